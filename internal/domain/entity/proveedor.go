package entity

import "time"

// Proveedor representa un proveedor al que se le atribuyen gastos.
// Solo puede eliminarse si ningún gasto lo referencia.
type Proveedor struct {
	ID        string
	UserID    string
	Nombre    string // normalizado en mayúsculas
	CreatedAt time.Time
	UpdatedAt time.Time
}
