package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// GastoRepo implementación PostgreSQL de GastoRepository.
type GastoRepo struct {
	pool *pgxpool.Pool
}

var _ repository.GastoRepository = (*GastoRepo)(nil)

func NewGastoRepo(pool *pgxpool.Pool) *GastoRepo {
	return &GastoRepo{pool: pool}
}

func (r *GastoRepo) Create(ctx context.Context, g *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, user_id, proveedor_id, descripcion, monto, fecha, categoria, receipt_filename, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`

	_, err := r.pool.Exec(ctx, query,
		g.ID, g.UserID, g.ProveedorID, g.Descripcion, g.Monto, g.Fecha,
		g.Categoria, g.ReceiptFilename, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("crear gasto: %w", err)
	}
	return nil
}

func (r *GastoRepo) GetByID(ctx context.Context, id, userID string) (*entity.Gasto, error) {
	query := `
		SELECT id, user_id, proveedor_id, descripcion, monto, fecha, categoria,
		       COALESCE(receipt_filename, ''), created_at
		FROM gastos WHERE id = $1 AND user_id = $2`

	var g entity.Gasto
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&g.ID, &g.UserID, &g.ProveedorID, &g.Descripcion, &g.Monto, &g.Fecha,
		&g.Categoria, &g.ReceiptFilename, &g.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar gasto: %w", err)
	}
	return &g, nil
}

func (r *GastoRepo) Update(ctx context.Context, g *entity.Gasto) error {
	query := `
		UPDATE gastos
		SET proveedor_id = $3, descripcion = $4, monto = $5, fecha = $6,
		    categoria = $7, receipt_filename = NULLIF($8, '')
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query,
		g.ID, g.UserID, g.ProveedorID, g.Descripcion, g.Monto, g.Fecha,
		g.Categoria, g.ReceiptFilename,
	)
	if err != nil {
		return fmt.Errorf("actualizar gasto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GastoRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM gastos WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("eliminar gasto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GastoRepo) List(ctx context.Context, userID string, filter repository.GastoFilter, page, perPage int) ([]repository.GastoConProveedor, int, error) {
	desde, hasta, conRango := rangoArgs(filter.Rango)

	countQuery := `
		SELECT COUNT(*)
		FROM gastos g
		WHERE g.user_id = $1
		  AND (NOT $2::bool OR g.fecha BETWEEN $3 AND $4)
		  AND ($5 = '' OR g.categoria = $5)`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery,
		userID, conRango, desde, hasta, filter.Categoria,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar gastos: %w", err)
	}

	query := `
		SELECT g.id, g.user_id, g.proveedor_id, g.descripcion, g.monto, g.fecha,
		       g.categoria, COALESCE(g.receipt_filename, ''), g.created_at,
		       pr.nombre
		FROM gastos g
		JOIN proveedores pr ON pr.id = g.proveedor_id
		WHERE g.user_id = $1
		  AND (NOT $2::bool OR g.fecha BETWEEN $3 AND $4)
		  AND ($5 = '' OR g.categoria = $5)
		ORDER BY g.fecha DESC, g.created_at DESC
		LIMIT $6 OFFSET $7`

	rows, err := r.pool.Query(ctx, query,
		userID, conRango, desde, hasta, filter.Categoria, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listar gastos: %w", err)
	}
	defer rows.Close()

	var items []repository.GastoConProveedor
	for rows.Next() {
		var item repository.GastoConProveedor
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProveedorID, &item.Descripcion,
			&item.Monto, &item.Fecha, &item.Categoria, &item.ReceiptFilename,
			&item.CreatedAt, &item.ProveedorNombre,
		); err != nil {
			return nil, 0, fmt.Errorf("escanear gasto: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *GastoRepo) Summary(ctx context.Context, userID string, filter repository.GastoFilter) (decimal.Decimal, error) {
	desde, hasta, conRango := rangoArgs(filter.Rango)

	query := `
		SELECT COALESCE(SUM(monto), 0)
		FROM gastos
		WHERE user_id = $1
		  AND (NOT $2::bool OR fecha BETWEEN $3 AND $4)
		  AND ($5 = '' OR categoria = $5)`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query,
		userID, conRango, desde, hasta, filter.Categoria,
	).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("resumen de gastos: %w", err)
	}
	return total, nil
}

func (r *GastoRepo) Recent(ctx context.Context, userID string, limit int) ([]repository.GastoConProveedor, error) {
	query := `
		SELECT g.id, g.user_id, g.proveedor_id, g.descripcion, g.monto, g.fecha,
		       g.categoria, COALESCE(g.receipt_filename, ''), g.created_at,
		       pr.nombre
		FROM gastos g
		JOIN proveedores pr ON pr.id = g.proveedor_id
		WHERE g.user_id = $1
		ORDER BY g.fecha DESC, g.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("gastos recientes: %w", err)
	}
	defer rows.Close()

	var items []repository.GastoConProveedor
	for rows.Next() {
		var item repository.GastoConProveedor
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProveedorID, &item.Descripcion,
			&item.Monto, &item.Fecha, &item.Categoria, &item.ReceiptFilename,
			&item.CreatedAt, &item.ProveedorNombre,
		); err != nil {
			return nil, fmt.Errorf("escanear gasto reciente: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *GastoRepo) ReceiptBelongsToUser(ctx context.Context, filename, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM gastos WHERE receipt_filename = $1 AND user_id = $2
		)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, filename, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("verificar comprobante: %w", err)
	}
	return ok, nil
}
