package entity

import "time"

// User representa un usuario registrado del sistema. Cada usuario es dueño de
// sus propios registros de empleados; nada fuera de su scope le es visible.
type User struct {
	ID           string
	Username     string // único en todo el sistema
	PasswordHash string // bcrypt; nunca el password en claro
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
