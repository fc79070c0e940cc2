package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CostoRepository puerto para los costos por defecto de cada tipo de trámite.
// Una fila por (usuario, trámite) con semántica upsert.
type CostoRepository interface {
	Set(ctx context.Context, userID, tramite string, costo decimal.Decimal) error
	GetAll(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
	// GetForTramite devuelve nil si no hay costo definido.
	GetForTramite(ctx context.Context, userID, tramite string) (*decimal.Decimal, error)
	// BackfillCostosCero asigna el costo por defecto a los trámites antiguos
	// registrados con costo cero. Devuelve cuántas filas se actualizaron.
	BackfillCostosCero(ctx context.Context, userID string) (int64, error)
}
