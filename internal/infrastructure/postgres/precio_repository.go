package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// PrecioRepo implementación PostgreSQL de PrecioRepository.
type PrecioRepo struct {
	pool *pgxpool.Pool
}

var _ repository.PrecioRepository = (*PrecioRepo)(nil)

func NewPrecioRepo(pool *pgxpool.Pool) *PrecioRepo {
	return &PrecioRepo{pool: pool}
}

func (r *PrecioRepo) SetBulk(ctx context.Context, papeleriaID string, precios map[string]decimal.Decimal) error {
	if len(precios) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO papeleria_precios (id, papeleria_id, tramite, precio)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (papeleria_id, tramite) DO UPDATE SET precio = EXCLUDED.precio`

	for tramite, precio := range precios {
		if _, err := tx.Exec(ctx, query, uuid.New().String(), papeleriaID, tramite, precio); err != nil {
			return fmt.Errorf("guardar precio de %s: %w", tramite, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar precios: %w", err)
	}
	return nil
}

func (r *PrecioRepo) GetPrecio(ctx context.Context, papeleriaID, tramite, userID string) (*decimal.Decimal, error) {
	query := `
		SELECT pp.precio
		FROM papeleria_precios pp
		JOIN papelerias p ON p.id = pp.papeleria_id AND p.is_active
		WHERE pp.papeleria_id = $1 AND pp.tramite = $2 AND p.user_id = $3`

	var precio decimal.Decimal
	err := r.pool.QueryRow(ctx, query, papeleriaID, tramite, userID).Scan(&precio)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar precio: %w", err)
	}
	return &precio, nil
}

func (r *PrecioRepo) GetAllForPapeleria(ctx context.Context, papeleriaID string) (map[string]decimal.Decimal, error) {
	query := `SELECT tramite, precio FROM papeleria_precios WHERE papeleria_id = $1`

	rows, err := r.pool.Query(ctx, query, papeleriaID)
	if err != nil {
		return nil, fmt.Errorf("listar precios: %w", err)
	}
	defer rows.Close()

	precios := make(map[string]decimal.Decimal)
	for rows.Next() {
		var tramite string
		var precio decimal.Decimal
		if err := rows.Scan(&tramite, &precio); err != nil {
			return nil, fmt.Errorf("escanear precio: %w", err)
		}
		precios[tramite] = precio
	}
	return precios, rows.Err()
}

func (r *PrecioRepo) CountForPapeleria(ctx context.Context, papeleriaID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM papeleria_precios WHERE papeleria_id = $1`, papeleriaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar precios: %w", err)
	}
	return count, nil
}
