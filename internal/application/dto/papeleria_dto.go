package dto

import "github.com/docuexpress/docuexpress-api/internal/domain/repository"

// CreatePapeleriaRequest alta de papelería. El nombre se normaliza antes de
// persistir (mayúsculas, sin acentos).
type CreatePapeleriaRequest struct {
	Nombre string `json:"nombre"`
}

// UpdatePapeleriaRequest renombrado de papelería.
type UpdatePapeleriaRequest struct {
	Nombre string `json:"nombre"`
}

// PapeleriaResponse resultado del alta: Reactivada indica que se recuperó una
// papelería inactiva homónima en lugar de crear una nueva.
type PapeleriaResponse struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	Reactivada bool   `json:"reactivada,omitempty"`
}

// PapeleriaStatsResponse fila del listado con totales acumulados.
type PapeleriaStatsResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Cuantos       int     `json:"cuantos"`
	TotalIngresos float64 `json:"total_ingresos"`
	TotalCostos   float64 `json:"total_costos"`
	Ganancia      float64 `json:"ganancia"`
}

// ToPapeleriaStatsResponse mapea la fila del repositorio a la respuesta.
func ToPapeleriaStatsResponse(s repository.PapeleriaStats) PapeleriaStatsResponse {
	return PapeleriaStatsResponse{
		ID:            s.ID,
		Nombre:        s.Nombre,
		Cuantos:       s.Cuantos,
		TotalIngresos: Money(s.TotalIngresos),
		TotalCostos:   Money(s.TotalCostos),
		Ganancia:      Money(s.Ganancia),
	}
}
