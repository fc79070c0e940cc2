package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// TramiteRepo implementación PostgreSQL de TramiteRepository.
type TramiteRepo struct {
	pool *pgxpool.Pool
}

var _ repository.TramiteRepository = (*TramiteRepo)(nil)

func NewTramiteRepo(pool *pgxpool.Pool) *TramiteRepo {
	return &TramiteRepo{pool: pool}
}

func (r *TramiteRepo) AddBulk(ctx context.Context, tramites []*entity.Tramite) error {
	if len(tramites) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tramites (id, papeleria_id, user_id, tramite, fecha, precio, costo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, t := range tramites {
		if _, err := tx.Exec(ctx, query,
			t.ID, t.PapeleriaID, t.UserID, t.Tramite, t.Fecha, t.Precio, t.Costo, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("insertar trámite: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar trámites: %w", err)
	}
	return nil
}

func (r *TramiteRepo) GetByID(ctx context.Context, id, userID string) (*entity.Tramite, error) {
	query := `
		SELECT id, papeleria_id, user_id, tramite, fecha, precio, costo, created_at
		FROM tramites
		WHERE id = $1 AND user_id = $2`

	var t entity.Tramite
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.PapeleriaID, &t.UserID, &t.Tramite, &t.Fecha, &t.Precio, &t.Costo, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar trámite: %w", err)
	}
	return &t, nil
}

func (r *TramiteRepo) Update(ctx context.Context, t *entity.Tramite) error {
	query := `
		UPDATE tramites
		SET tramite = $3, fecha = $4, precio = $5, costo = $6
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, t.ID, t.UserID, t.Tramite, t.Fecha, t.Precio, t.Costo)
	if err != nil {
		return fmt.Errorf("actualizar trámite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar trámite: sin filas")
	}
	return nil
}

func (r *TramiteRepo) Delete(ctx context.Context, id, userID string) (string, error) {
	query := `DELETE FROM tramites WHERE id = $1 AND user_id = $2 RETURNING papeleria_id`

	var papeleriaID string
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(&papeleriaID)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("eliminar trámite: %w", err)
	}
	return papeleriaID, nil
}

func (r *TramiteRepo) ListByPapeleria(ctx context.Context, papeleriaID, userID string, rango *repository.Rango, page, perPage int) ([]*entity.Tramite, int, error) {
	desde, hasta, conRango := rangoArgs(rango)

	countQuery := `
		SELECT COUNT(*)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.papeleria_id = $1 AND t.user_id = $2
		  AND (NOT $3::bool OR t.fecha BETWEEN $4 AND $5)`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, papeleriaID, userID, conRango, desde, hasta).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar trámites: %w", err)
	}

	query := `
		SELECT t.id, t.papeleria_id, t.user_id, t.tramite, t.fecha, t.precio, t.costo, t.created_at
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.papeleria_id = $1 AND t.user_id = $2
		  AND (NOT $3::bool OR t.fecha BETWEEN $4 AND $5)
		ORDER BY t.fecha DESC, t.created_at DESC
		LIMIT $6 OFFSET $7`

	rows, err := r.pool.Query(ctx, query,
		papeleriaID, userID, conRango, desde, hasta, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listar trámites: %w", err)
	}
	defer rows.Close()

	var tramites []*entity.Tramite
	for rows.Next() {
		var t entity.Tramite
		if err := rows.Scan(&t.ID, &t.PapeleriaID, &t.UserID, &t.Tramite, &t.Fecha, &t.Precio, &t.Costo, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("escanear trámite: %w", err)
		}
		tramites = append(tramites, &t)
	}
	return tramites, total, rows.Err()
}

func (r *TramiteRepo) TotalsGeneral(ctx context.Context, userID string, rango *repository.Rango) (*repository.Totales, error) {
	desde, hasta, conRango := rangoArgs(rango)

	query := `
		SELECT COUNT(t.id),
		       COALESCE(SUM(t.precio), 0),
		       COALESCE(SUM(t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		  AND (NOT $2::bool OR t.fecha BETWEEN $3 AND $4)`

	var tot repository.Totales
	err := r.pool.QueryRow(ctx, query, userID, conRango, desde, hasta).Scan(
		&tot.Cuantos, &tot.TotalIngresos, &tot.TotalCostos,
	)
	if err != nil {
		return nil, fmt.Errorf("totales generales: %w", err)
	}
	return &tot, nil
}

func (r *TramiteRepo) TotalsByPapeleria(ctx context.Context, papeleriaID, userID string, rango *repository.Rango) (*repository.Totales, error) {
	desde, hasta, conRango := rangoArgs(rango)

	query := `
		SELECT COUNT(id),
		       COALESCE(SUM(precio), 0),
		       COALESCE(SUM(costo), 0)
		FROM tramites
		WHERE papeleria_id = $1 AND user_id = $2
		  AND (NOT $3::bool OR fecha BETWEEN $4 AND $5)`

	var tot repository.Totales
	err := r.pool.QueryRow(ctx, query, papeleriaID, userID, conRango, desde, hasta).Scan(
		&tot.Cuantos, &tot.TotalIngresos, &tot.TotalCostos,
	)
	if err != nil {
		return nil, fmt.Errorf("totales de papelería: %w", err)
	}
	return &tot, nil
}

func (r *TramiteRepo) Distinct(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT tramite FROM tramites WHERE user_id = $1 ORDER BY tramite`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("trámites distintos: %w", err)
	}
	defer rows.Close()

	var nombres []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("escanear trámite: %w", err)
		}
		nombres = append(nombres, n)
	}
	return nombres, rows.Err()
}

func (r *TramiteRepo) Recent(ctx context.Context, userID string, limit int) ([]repository.TramiteConPapeleria, error) {
	query := `
		SELECT t.id, t.papeleria_id, t.user_id, t.tramite, t.fecha, t.precio, t.costo, t.created_at,
		       p.nombre
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		ORDER BY t.fecha DESC, t.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("trámites recientes: %w", err)
	}
	defer rows.Close()

	var items []repository.TramiteConPapeleria
	for rows.Next() {
		var item repository.TramiteConPapeleria
		if err := rows.Scan(
			&item.ID, &item.PapeleriaID, &item.UserID, &item.Tramite,
			&item.Fecha, &item.Precio, &item.Costo, &item.CreatedAt,
			&item.PapeleriaNombre,
		); err != nil {
			return nil, fmt.Errorf("escanear trámite reciente: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// rangoArgs traduce el filtro opcional a argumentos posicionales: cuando no hay
// rango se pasan fechas centinela que el predicado ignora.
func rangoArgs(rango *repository.Rango) (desde, hasta time.Time, conRango bool) {
	if rango == nil {
		return time.Time{}, time.Time{}, false
	}
	return rango.Desde, rango.Hasta, true
}
