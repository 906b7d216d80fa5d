package authz

// Módulos gobernados por la tabla de permisos.
const (
	ModuleUsers       = "users"
	ModuleClients     = "clients"
	ModuleProducts    = "products"
	ModuleProviders   = "providers"
	ModuleInventories = "inventories"
	ModuleSales       = "sales"
	ModuleReports     = "reports"
)

// Action acción gobernada dentro de un módulo.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReport Action = "report"
)

// policy es la tabla módulo → acción → nivel mínimo requerido.
// Nivel menor = más privilegio (1 = administrador), así que "mínimo" es el
// valor numérico más alto que todavía tiene permitida la acción.
var policy = map[string]map[Action]int{
	ModuleUsers: {
		ActionRead:   1,
		ActionCreate: 1,
		ActionUpdate: 1,
		ActionDelete: 1,
	},
	ModuleClients: {
		ActionRead:   3,
		ActionCreate: 2,
		ActionUpdate: 2,
		ActionDelete: 2,
	},
	ModuleProducts: {
		ActionRead:   3,
		ActionCreate: 2,
		ActionUpdate: 2,
		ActionDelete: 1,
	},
	ModuleProviders: {
		ActionRead:   3,
		ActionCreate: 2,
		ActionUpdate: 2,
		ActionDelete: 1,
	},
	ModuleInventories: {
		ActionRead:   3,
		ActionCreate: 2,
		ActionUpdate: 2,
		ActionDelete: 1,
	},
	ModuleSales: {
		ActionRead:   3,
		ActionCreate: 2,
		ActionUpdate: 2,
		ActionDelete: 2,
		ActionReport: 3,
	},
	ModuleReports: {
		ActionRead:   3,
		ActionReport: 3,
	},
}

// MinLevel devuelve el nivel mínimo requerido para la acción en el módulo y
// si la combinación está contemplada en la tabla.
func MinLevel(module string, action Action) (int, bool) {
	actions, ok := policy[module]
	if !ok {
		return 0, false
	}
	level, ok := actions[action]
	return level, ok
}
