package dto

// CreateClientRequest alta de cliente. Todos los campos son requeridos.
type CreateClientRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// UpdateClientRequest campos a modificar; nil no se toca.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	City    *string `json:"city,omitempty"`
}

// ClientResponse vista de un cliente.
type ClientResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}
