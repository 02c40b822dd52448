package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT (expira a la hora de emitido).
type LoginResponse struct {
	Token string `json:"token"`
}
