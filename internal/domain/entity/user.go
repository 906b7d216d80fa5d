package entity

// Niveles de usuario: número menor = más privilegio.
const (
	LevelAdmin      = 1 // administrador
	LevelSupervisor = 2
	LevelOperador   = 3
)

// ValidLevel indica si el nivel está dentro del rango permitido {1,2,3}.
func ValidLevel(level int) bool {
	return level >= LevelAdmin && level <= LevelOperador
}

// User representa un usuario del sistema. La clave nunca se guarda en claro:
// se persiste el digest hex de salt+clave junto con el salt por usuario.
type User struct {
	Username     string
	PasswordHash string // digest hex de 64 caracteres
	Salt         string
	Level        int // 1..3, 1 = administrador
}
