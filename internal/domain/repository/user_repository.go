package repository

import "github.com/jhoicas/empleados-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
