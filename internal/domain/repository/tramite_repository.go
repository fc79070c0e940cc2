package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
)

// Totales agregado de trámites: conteo, ingresos y costos.
type Totales struct {
	Cuantos       int
	TotalIngresos decimal.Decimal
	TotalCostos   decimal.Decimal
}

// Ganancia devuelve ingresos - costos.
func (t Totales) Ganancia() decimal.Decimal {
	return t.TotalIngresos.Sub(t.TotalCostos)
}

// TramiteConPapeleria trámite junto al nombre de su papelería (para búsquedas).
type TramiteConPapeleria struct {
	entity.Tramite
	PapeleriaNombre string
}

// TramiteRepository puerto de persistencia para trámites.
type TramiteRepository interface {
	// AddBulk inserta las filas en una sola transacción: o entran todas o
	// ninguna. Cada fila representa un cliente que pagó el mismo servicio.
	AddBulk(ctx context.Context, tramites []*entity.Tramite) error
	GetByID(ctx context.Context, id, userID string) (*entity.Tramite, error)
	Update(ctx context.Context, t *entity.Tramite) error
	// Delete elimina el trámite y devuelve el ID de su papelería (vacío si
	// no existía).
	Delete(ctx context.Context, id, userID string) (papeleriaID string, err error)
	// ListByPapeleria pagina los trámites de una papelería activa, más
	// recientes primero.
	ListByPapeleria(ctx context.Context, papeleriaID, userID string, rango *Rango, page, perPage int) (items []*entity.Tramite, total int, err error)
	TotalsGeneral(ctx context.Context, userID string, rango *Rango) (*Totales, error)
	TotalsByPapeleria(ctx context.Context, papeleriaID, userID string, rango *Rango) (*Totales, error)
	Distinct(ctx context.Context, userID string) ([]string, error)
	// Recent devuelve los últimos trámites de papelerías activas.
	Recent(ctx context.Context, userID string, limit int) ([]TramiteConPapeleria, error)
}
