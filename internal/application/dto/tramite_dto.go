package dto

import (
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// AddTramitesRequest registra uno o varios cobros del mismo servicio en una
// papelería: Cantidad clientes pagaron Precio cada uno el día Fecha.
// Decimal acepta número o string en el JSON.
type AddTramitesRequest struct {
	PapeleriaID string           `json:"papeleria_id"`
	Tramite     string           `json:"tramite"`
	Fecha       string           `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Precio      decimal.Decimal  `json:"precio"`
	Costo       *decimal.Decimal `json:"costo"`    // nil = usar costo por defecto del trámite
	Cantidad    int              `json:"cantidad"` // 0 se trata como 1
}

// UpdateTramiteRequest edición de un cobro existente.
type UpdateTramiteRequest struct {
	Tramite string          `json:"tramite"`
	Fecha   string          `json:"fecha"`
	Precio  decimal.Decimal `json:"precio"`
	Costo   decimal.Decimal `json:"costo"`
}

// TramiteResponse vista de un cobro con su ganancia derivada.
type TramiteResponse struct {
	ID          string  `json:"id"`
	PapeleriaID string  `json:"papeleria_id"`
	Tramite     string  `json:"tramite"`
	Fecha       string  `json:"fecha"`
	Precio      float64 `json:"precio"`
	Costo       float64 `json:"costo"`
	Ganancia    float64 `json:"ganancia"`
}

// TramiteConPapeleriaResponse cobro junto al nombre de su papelería.
type TramiteConPapeleriaResponse struct {
	TramiteResponse
	PapeleriaNombre string `json:"papeleria_nombre"`
}

// TotalesResponse agregado de cobros.
type TotalesResponse struct {
	Cuantos       int     `json:"cuantos"`
	TotalIngresos float64 `json:"total_ingresos"`
	TotalCostos   float64 `json:"total_costos"`
	Ganancia      float64 `json:"ganancia"`
}

func ToTramiteResponse(t *entity.Tramite) TramiteResponse {
	return TramiteResponse{
		ID:          t.ID,
		PapeleriaID: t.PapeleriaID,
		Tramite:     t.Tramite,
		Fecha:       t.Fecha.Format(FechaLayout),
		Precio:      Money(t.Precio),
		Costo:       Money(t.Costo),
		Ganancia:    Money(t.Ganancia()),
	}
}

func ToTramiteConPapeleriaResponse(t repository.TramiteConPapeleria) TramiteConPapeleriaResponse {
	return TramiteConPapeleriaResponse{
		TramiteResponse: ToTramiteResponse(&t.Tramite),
		PapeleriaNombre: t.PapeleriaNombre,
	}
}

func ToTotalesResponse(t *repository.Totales) TotalesResponse {
	return TotalesResponse{
		Cuantos:       t.Cuantos,
		TotalIngresos: Money(t.TotalIngresos),
		TotalCostos:   Money(t.TotalCostos),
		Ganancia:      Money(t.Ganancia()),
	}
}
