package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// ProveedorRepo implementación PostgreSQL de ProveedorRepository.
type ProveedorRepo struct {
	pool *pgxpool.Pool
}

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

func NewProveedorRepo(pool *pgxpool.Pool) *ProveedorRepo {
	return &ProveedorRepo{pool: pool}
}

func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, user_id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, p.ID, p.UserID, p.Nombre, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetAll(ctx context.Context, userID string) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, user_id, nombre, created_at, updated_at
		FROM proveedores WHERE user_id = $1 ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.UserID, &p.Nombre, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear proveedor: %w", err)
		}
		proveedores = append(proveedores, &p)
	}
	return proveedores, rows.Err()
}

func (r *ProveedorRepo) GetByID(ctx context.Context, id, userID string) (*entity.Proveedor, error) {
	query := `
		SELECT id, user_id, nombre, created_at, updated_at
		FROM proveedores WHERE id = $1 AND user_id = $2`

	var p entity.Proveedor
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Nombre, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.UserID, p.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProveedorRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM proveedores WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("eliminar proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProveedorRepo) IsInUse(ctx context.Context, id, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM gastos WHERE proveedor_id = $1 AND user_id = $2
		)`

	var inUse bool
	if err := r.pool.QueryRow(ctx, query, id, userID).Scan(&inUse); err != nil {
		return false, fmt.Errorf("verificar uso de proveedor: %w", err)
	}
	return inUse, nil
}
