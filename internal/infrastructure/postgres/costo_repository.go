package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// CostoRepo implementación PostgreSQL de CostoRepository.
type CostoRepo struct {
	pool *pgxpool.Pool
}

var _ repository.CostoRepository = (*CostoRepo)(nil)

func NewCostoRepo(pool *pgxpool.Pool) *CostoRepo {
	return &CostoRepo{pool: pool}
}

func (r *CostoRepo) Set(ctx context.Context, userID, tramite string, costo decimal.Decimal) error {
	query := `
		INSERT INTO tramite_costos (id, user_id, tramite, costo)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tramite) DO UPDATE SET costo = EXCLUDED.costo`

	if _, err := r.pool.Exec(ctx, query, uuid.New().String(), userID, tramite, costo); err != nil {
		return fmt.Errorf("guardar costo: %w", err)
	}
	return nil
}

func (r *CostoRepo) GetAll(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `SELECT tramite, costo FROM tramite_costos WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listar costos: %w", err)
	}
	defer rows.Close()

	costos := make(map[string]decimal.Decimal)
	for rows.Next() {
		var tramite string
		var costo decimal.Decimal
		if err := rows.Scan(&tramite, &costo); err != nil {
			return nil, fmt.Errorf("escanear costo: %w", err)
		}
		costos[tramite] = costo
	}
	return costos, rows.Err()
}

func (r *CostoRepo) GetForTramite(ctx context.Context, userID, tramite string) (*decimal.Decimal, error) {
	query := `SELECT costo FROM tramite_costos WHERE user_id = $1 AND tramite = $2`

	var costo decimal.Decimal
	err := r.pool.QueryRow(ctx, query, userID, tramite).Scan(&costo)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar costo: %w", err)
	}
	return &costo, nil
}

func (r *CostoRepo) BackfillCostosCero(ctx context.Context, userID string) (int64, error) {
	// Solo toca trámites con costo cero que tengan costo por defecto definido.
	query := `
		UPDATE tramites t
		SET costo = tc.costo
		FROM tramite_costos tc
		WHERE tc.user_id = t.user_id AND tc.tramite = t.tramite
		  AND t.user_id = $1 AND t.costo = 0 AND tc.costo > 0`

	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("backfill de costos: %w", err)
	}
	return tag.RowsAffected(), nil
}
