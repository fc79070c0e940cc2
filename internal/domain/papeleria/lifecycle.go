// Package papeleria modela el ciclo de vida Activa/Inactiva de una papelería
// como una función de transición pura, separada de la persistencia.
package papeleria

// Estado del registro existente con el mismo nombre normalizado.
type Estado int

const (
	Activa Estado = iota
	Inactiva
)

// Accion resultado de resolver un alta contra el estado existente.
type Accion int

const (
	// Crear no existe registro con ese nombre: insertar una papelería activa.
	Crear Accion = iota
	// Reactivar existe una inactiva con ese nombre: volver a activarla
	// conservando su ID (y su histórico de trámites).
	Reactivar
	// Rechazar ya existe una activa con ese nombre: alta duplicada.
	Rechazar
)

// Transition resultado del alta: la acción a ejecutar y, si aplica, el motivo
// del rechazo.
type Transition struct {
	Accion Accion
	Motivo string
}

// Resolve decide el destino de un alta de papelería dado el estado del
// registro homónimo existente (nil si no existe ninguno).
//
// Transiciones posibles:
//
//	ausente            -> Crear      (nueva papelería activa)
//	existente inactiva -> Reactivar  (mismo ID, is_active=true)
//	existente activa   -> Rechazar   (duplicado)
func Resolve(existente *Estado) Transition {
	if existente == nil {
		return Transition{Accion: Crear}
	}
	switch *existente {
	case Inactiva:
		return Transition{Accion: Reactivar}
	default:
		return Transition{Accion: Rechazar, Motivo: "ya existe una papelería activa con ese nombre"}
	}
}
