package repository

import (
	"context"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
)

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(ctx context.Context, p *entity.Proveedor) error
	GetAll(ctx context.Context, userID string) ([]*entity.Proveedor, error)
	GetByID(ctx context.Context, id, userID string) (*entity.Proveedor, error)
	Update(ctx context.Context, p *entity.Proveedor) error
	Delete(ctx context.Context, id, userID string) error
	// IsInUse informa si algún gasto referencia al proveedor; bloquea el borrado.
	IsInUse(ctx context.Context, id, userID string) (bool, error)
}
