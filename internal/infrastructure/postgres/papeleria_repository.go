package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// PapeleriaRepo implementación PostgreSQL de PapeleriaRepository.
type PapeleriaRepo struct {
	pool *pgxpool.Pool
}

var _ repository.PapeleriaRepository = (*PapeleriaRepo)(nil)

func NewPapeleriaRepo(pool *pgxpool.Pool) *PapeleriaRepo {
	return &PapeleriaRepo{pool: pool}
}

func (r *PapeleriaRepo) FindByNombre(ctx context.Context, userID, nombre string) (*entity.Papeleria, error) {
	query := `
		SELECT id, user_id, nombre, is_active, created_at, updated_at
		FROM papelerias
		WHERE user_id = $1 AND nombre = $2
		ORDER BY is_active DESC
		LIMIT 1`

	var p entity.Papeleria
	err := r.pool.QueryRow(ctx, query, userID, nombre).Scan(
		&p.ID, &p.UserID, &p.Nombre, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar papelería por nombre: %w", err)
	}
	return &p, nil
}

func (r *PapeleriaRepo) Create(ctx context.Context, p *entity.Papeleria) error {
	query := `
		INSERT INTO papelerias (id, user_id, nombre, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Nombre, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		// Carrera entre el FindByNombre previo y este INSERT: el índice
		// parcial único la convierte en duplicado normal.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear papelería: %w", err)
	}
	return nil
}

func (r *PapeleriaRepo) Reactivate(ctx context.Context, id string) error {
	query := `UPDATE papelerias SET is_active = true, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("reactivar papelería: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PapeleriaRepo) GetByID(ctx context.Context, id, userID string) (*entity.Papeleria, error) {
	query := `
		SELECT id, user_id, nombre, is_active, created_at, updated_at
		FROM papelerias
		WHERE id = $1 AND user_id = $2 AND is_active`

	var p entity.Papeleria
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Nombre, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar papelería: %w", err)
	}
	return &p, nil
}

func (r *PapeleriaRepo) ExistsWithNombre(ctx context.Context, userID, nombre, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM papelerias
			WHERE user_id = $1 AND nombre = $2 AND is_active AND id <> $3
		)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, nombre, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar nombre de papelería: %w", err)
	}
	return exists, nil
}

func (r *PapeleriaRepo) UpdateNombre(ctx context.Context, id, userID, nombre string) error {
	query := `
		UPDATE papelerias SET nombre = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_active`

	tag, err := r.pool.Exec(ctx, query, id, userID, nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("renombrar papelería: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PapeleriaRepo) SoftDelete(ctx context.Context, id, userID string) error {
	query := `
		UPDATE papelerias SET is_active = false, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND is_active`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("desactivar papelería: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PapeleriaRepo) ListWithStats(ctx context.Context, userID, search string) ([]repository.PapeleriaStats, error) {
	query := `
		SELECT p.id, p.nombre,
		       COUNT(t.id) AS cuantos,
		       COALESCE(SUM(t.precio), 0) AS total_ingresos,
		       COALESCE(SUM(t.costo), 0) AS total_costos
		FROM papelerias p
		LEFT JOIN tramites t ON t.papeleria_id = p.id
		WHERE p.user_id = $1 AND p.is_active
		  AND ($2 = '' OR p.nombre LIKE '%' || $2 || '%')
		GROUP BY p.id, p.nombre
		ORDER BY p.nombre`

	rows, err := r.pool.Query(ctx, query, userID, search)
	if err != nil {
		return nil, fmt.Errorf("listar papelerías: %w", err)
	}
	defer rows.Close()

	var stats []repository.PapeleriaStats
	for rows.Next() {
		var s repository.PapeleriaStats
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Cuantos, &s.TotalIngresos, &s.TotalCostos); err != nil {
			return nil, fmt.Errorf("escanear papelería: %w", err)
		}
		s.Ganancia = s.TotalIngresos.Sub(s.TotalCostos)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *PapeleriaRepo) ListAll(ctx context.Context, userID string) ([]*entity.Papeleria, error) {
	query := `
		SELECT id, user_id, nombre, is_active, created_at, updated_at
		FROM papelerias
		WHERE user_id = $1 AND is_active
		ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listar papelerías: %w", err)
	}
	defer rows.Close()

	var papelerias []*entity.Papeleria
	for rows.Next() {
		var p entity.Papeleria
		if err := rows.Scan(&p.ID, &p.UserID, &p.Nombre, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear papelería: %w", err)
		}
		papelerias = append(papelerias, &p)
	}
	return papelerias, rows.Err()
}
