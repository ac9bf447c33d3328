package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
// userType decide las capacidades del actor y es inmutable después del registro.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"required,oneof=donor ngo"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse proyección pública de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse salida de register y login: token JWT + proyección pública.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
