package entity

import "time"

// Papeleria representa un local donde se venden trámites.
// El nombre se guarda normalizado (mayúsculas, sin acentos) y es único por
// (usuario, nombre) mientras esté activa. El borrado es lógico: IsActive=false
// conserva el histórico de trámites asociado.
type Papeleria struct {
	ID        string
	UserID    string
	Nombre    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
