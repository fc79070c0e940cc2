package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
)

// PapeleriaStats fila del listado de papelerías con sus totales acumulados.
// Producida por un outer join: una papelería sin trámites aparece con ceros.
type PapeleriaStats struct {
	ID            string
	Nombre        string
	Cuantos       int
	TotalIngresos decimal.Decimal
	TotalCostos   decimal.Decimal
	Ganancia      decimal.Decimal
}

// PapeleriaRepository puerto de persistencia para papelerías.
// Todas las lecturas filtran por el usuario dueño; salvo FindByNombre,
// solo ven papelerías activas.
type PapeleriaRepository interface {
	// FindByNombre busca por nombre normalizado, activa o inactiva.
	// Es la consulta previa a la transición de alta (papeleria.Resolve).
	FindByNombre(ctx context.Context, userID, nombre string) (*entity.Papeleria, error)
	Create(ctx context.Context, p *entity.Papeleria) error
	// Reactivate vuelve a activar una papelería soft-deleted conservando su ID.
	Reactivate(ctx context.Context, id string) error
	GetByID(ctx context.Context, id, userID string) (*entity.Papeleria, error)
	ExistsWithNombre(ctx context.Context, userID, nombre, excludeID string) (bool, error)
	UpdateNombre(ctx context.Context, id, userID, nombre string) error
	// SoftDelete marca is_active=false; no-op si no existe papelería activa.
	SoftDelete(ctx context.Context, id, userID string) error
	// ListWithStats lista papelerías activas con sus totales, con búsqueda
	// opcional por nombre.
	ListWithStats(ctx context.Context, userID, search string) ([]PapeleriaStats, error)
	ListAll(ctx context.Context, userID string) ([]*entity.Papeleria, error)
}
