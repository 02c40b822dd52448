package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
)
