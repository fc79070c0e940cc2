package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PrecioConfig par costo general / precio específico para la pantalla de
// configuración de una papelería. Punteros nil = sin valor definido.
type PrecioConfig struct {
	CostoGeneral     *decimal.Decimal
	PrecioEspecifico *decimal.Decimal
}

// PrecioRepository puerto para los precios por papelería.
// Una fila por (papelería, trámite) con semántica upsert.
type PrecioRepository interface {
	// SetBulk upserta todos los precios en una sola transacción:
	// un fallo a mitad no deja ningún precio parcialmente aplicado.
	SetBulk(ctx context.Context, papeleriaID string, precios map[string]decimal.Decimal) error
	// GetPrecio devuelve nil si no hay precio definido; solo ve papelerías
	// activas del usuario.
	GetPrecio(ctx context.Context, papeleriaID, tramite, userID string) (*decimal.Decimal, error)
	GetAllForPapeleria(ctx context.Context, papeleriaID string) (map[string]decimal.Decimal, error)
	CountForPapeleria(ctx context.Context, papeleriaID string) (int, error)
}
