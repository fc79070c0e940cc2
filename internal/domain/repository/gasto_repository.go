package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
)

// GastoConProveedor gasto junto al nombre de su proveedor.
type GastoConProveedor struct {
	entity.Gasto
	ProveedorNombre string
}

// GastoFilter filtros del listado de gastos.
type GastoFilter struct {
	Rango     *Rango
	Categoria string // vacío = todas
}

// GastoRepository puerto de persistencia para gastos operativos.
type GastoRepository interface {
	Create(ctx context.Context, g *entity.Gasto) error
	GetByID(ctx context.Context, id, userID string) (*entity.Gasto, error)
	Update(ctx context.Context, g *entity.Gasto) error
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, userID string, filter GastoFilter, page, perPage int) (items []GastoConProveedor, total int, err error)
	// Summary suma los montos que cumplen los filtros.
	Summary(ctx context.Context, userID string, filter GastoFilter) (decimal.Decimal, error)
	Recent(ctx context.Context, userID string, limit int) ([]GastoConProveedor, error)
	// ReceiptBelongsToUser verifica la propiedad de un comprobante subido.
	ReceiptBelongsToUser(ctx context.Context, filename, userID string) (bool, error)
}
