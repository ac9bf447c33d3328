package entity

import "time"

// Tipos de usuario válidos. El rol es inmutable después del registro:
// no existe ruta de edición de perfil ni de borrado.
const (
	UserTypeDonor = "donor"
	UserTypeNGO   = "ngo"
)

// IsValidUserType verifica que el tipo sea donor o ngo.
func IsValidUserType(t string) bool {
	return t == UserTypeDonor || t == UserTypeNGO
}

// User representa un usuario del sistema (donante u ONG).
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	UserType     string // donor, ngo
	CreatedAt    time.Time
}
