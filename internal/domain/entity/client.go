package entity

// Client representa un cliente de la empresa. Todos los campos son requeridos.
type Client struct {
	Code    string // código único, clave primaria
	Name    string
	Address string
	Phone   string
	City    string
}
