package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa una cuenta del sistema. Cada usuario es un tenant:
// todos sus datos (papelerías, trámites, gastos) quedan aislados por su ID.
// Un admin puede consultar los datos de otro usuario vía impersonación.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
