package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// AnalyticsRepo implementación PostgreSQL de AnalyticsRepository.
// Las agregaciones mensuales agrupan por to_char(fecha, 'YYYY-MM'); el día de
// la semana sale de EXTRACT(DOW), con 0=domingo.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

func NewAnalyticsRepo(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) MonthlyTramiteRows(ctx context.Context, userID string, desde, hasta time.Time) ([]repository.MonthRow, error) {
	query := `
		SELECT to_char(t.fecha, 'YYYY-MM') AS mes,
		       COALESCE(SUM(t.precio), 0),
		       COALESCE(SUM(t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1 AND t.fecha BETWEEN $2 AND $3
		GROUP BY mes
		ORDER BY mes`

	return r.scanMonthRows(ctx, query, userID, desde, hasta)
}

func (r *AnalyticsRepo) MonthlyTramiteRowsForPapeleria(ctx context.Context, papeleriaID, userID string, desde, hasta time.Time) ([]repository.MonthRow, error) {
	query := `
		SELECT to_char(fecha, 'YYYY-MM') AS mes,
		       COALESCE(SUM(precio), 0),
		       COALESCE(SUM(costo), 0)
		FROM tramites
		WHERE papeleria_id = $4 AND user_id = $1 AND fecha BETWEEN $2 AND $3
		GROUP BY mes
		ORDER BY mes`

	return r.scanMonthRows(ctx, query, userID, desde, hasta, papeleriaID)
}

func (r *AnalyticsRepo) scanMonthRows(ctx context.Context, query string, args ...any) ([]repository.MonthRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("agregados mensuales: %w", err)
	}
	defer rows.Close()

	var result []repository.MonthRow
	for rows.Next() {
		var row repository.MonthRow
		if err := rows.Scan(&row.Mes, &row.Ingresos, &row.Costos); err != nil {
			return nil, fmt.Errorf("escanear mes: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) MonthlyGastoRows(ctx context.Context, userID string, desde, hasta time.Time) ([]repository.GastoMonthRow, error) {
	query := `
		SELECT to_char(fecha, 'YYYY-MM') AS mes, COALESCE(SUM(monto), 0)
		FROM gastos
		WHERE user_id = $1 AND fecha BETWEEN $2 AND $3
		GROUP BY mes
		ORDER BY mes`

	rows, err := r.pool.Query(ctx, query, userID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("gastos mensuales: %w", err)
	}
	defer rows.Close()

	var result []repository.GastoMonthRow
	for rows.Next() {
		var row repository.GastoMonthRow
		if err := rows.Scan(&row.Mes, &row.Monto); err != nil {
			return nil, fmt.Errorf("escanear mes de gastos: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) PeriodMetrics(ctx context.Context, userID string, desde, hasta time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.precio), 0), COALESCE(SUM(t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1 AND t.fecha BETWEEN $2 AND $3`

	var ingresos, costos decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID, desde, hasta).Scan(&ingresos, &costos); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("métricas de período: %w", err)
	}
	return ingresos, costos, nil
}

func (r *AnalyticsRepo) TopPapelerias(ctx context.Context, userID string, rango *repository.Rango, limit int) ([]repository.TopPapeleriaRow, error) {
	desde, hasta, conRango := rangoArgs(rango)

	query := `
		SELECT p.nombre,
		       COALESCE(SUM(t.precio - t.costo), 0) AS ganancia
		FROM papelerias p
		LEFT JOIN tramites t ON t.papeleria_id = p.id
		  AND (NOT $2::bool OR t.fecha BETWEEN $3 AND $4)
		WHERE p.user_id = $1 AND p.is_active
		GROUP BY p.id, p.nombre
		ORDER BY ganancia DESC
		LIMIT $5`

	rows, err := r.pool.Query(ctx, query, userID, conRango, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top papelerías: %w", err)
	}
	defer rows.Close()

	var result []repository.TopPapeleriaRow
	for rows.Next() {
		var row repository.TopPapeleriaRow
		if err := rows.Scan(&row.Nombre, &row.Ganancia); err != nil {
			return nil, fmt.Errorf("escanear papelería: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) TramiteDistribution(ctx context.Context, userID string, rango *repository.Rango, limit int) ([]repository.DistribucionRow, error) {
	desde, hasta, conRango := rangoArgs(rango)

	query := `
		SELECT t.tramite, COUNT(*) AS cuantos
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		  AND (NOT $2::bool OR t.fecha BETWEEN $3 AND $4)
		GROUP BY t.tramite
		ORDER BY cuantos DESC
		LIMIT $5`

	return r.scanDistribucion(ctx, query, userID, conRango, desde, hasta, limit)
}

func (r *AnalyticsRepo) TramiteDistributionForPapeleria(ctx context.Context, papeleriaID, userID string, limit int) ([]repository.DistribucionRow, error) {
	query := `
		SELECT tramite, COUNT(*) AS cuantos
		FROM tramites
		WHERE papeleria_id = $1 AND user_id = $2
		GROUP BY tramite
		ORDER BY cuantos DESC
		LIMIT $3`

	return r.scanDistribucion(ctx, query, papeleriaID, userID, limit)
}

func (r *AnalyticsRepo) scanDistribucion(ctx context.Context, query string, args ...any) ([]repository.DistribucionRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("distribución de trámites: %w", err)
	}
	defer rows.Close()

	var result []repository.DistribucionRow
	for rows.Next() {
		var row repository.DistribucionRow
		if err := rows.Scan(&row.Etiqueta, &row.Cuantos); err != nil {
			return nil, fmt.Errorf("escanear distribución: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) GastoDistribution(ctx context.Context, userID string, rango *repository.Rango) ([]repository.GastoDistribucionRow, error) {
	desde, hasta, conRango := rangoArgs(rango)

	query := `
		SELECT categoria, COALESCE(SUM(monto), 0) AS total
		FROM gastos
		WHERE user_id = $1
		  AND (NOT $2::bool OR fecha BETWEEN $3 AND $4)
		GROUP BY categoria
		ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, userID, conRango, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("distribución de gastos: %w", err)
	}
	defer rows.Close()

	var result []repository.GastoDistribucionRow
	for rows.Next() {
		var row repository.GastoDistribucionRow
		if err := rows.Scan(&row.Categoria, &row.Monto); err != nil {
			return nil, fmt.Errorf("escanear categoría: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) GananciaDesde(ctx context.Context, userID string, desde time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.precio - t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1 AND t.fecha >= $2`

	var ganancia decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID, desde).Scan(&ganancia); err != nil {
		return decimal.Zero, fmt.Errorf("ganancia desde fecha: %w", err)
	}
	return ganancia, nil
}

func (r *AnalyticsRepo) MejorMes(ctx context.Context, userID string) (*repository.MesGanancia, error) {
	query := `
		SELECT to_char(t.fecha, 'YYYY-MM') AS mes,
		       SUM(t.precio - t.costo) AS ganancia
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		GROUP BY mes
		ORDER BY ganancia DESC
		LIMIT 1`

	var m repository.MesGanancia
	err := r.pool.QueryRow(ctx, query, userID).Scan(&m.Mes, &m.Ganancia)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("mejor mes: %w", err)
	}
	return &m, nil
}

func (r *AnalyticsRepo) GananciaPorDiaSemana(ctx context.Context, userID string) ([]repository.DiaSemanaRow, error) {
	query := `
		SELECT EXTRACT(DOW FROM t.fecha)::int AS dia,
		       COALESCE(SUM(t.precio - t.costo), 0),
		       COUNT(*)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		GROUP BY dia
		ORDER BY dia`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ganancia por día de semana: %w", err)
	}
	defer rows.Close()

	var result []repository.DiaSemanaRow
	for rows.Next() {
		var row repository.DiaSemanaRow
		if err := rows.Scan(&row.DiaSemana, &row.Ganancia, &row.Cuantos); err != nil {
			return nil, fmt.Errorf("escanear día de semana: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) MargenTotales(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.precio), 0), COALESCE(SUM(t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1`

	var ingresos, costos decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&ingresos, &costos); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("totales de margen: %w", err)
	}
	return ingresos, costos, nil
}

func (r *AnalyticsRepo) ROIPorPapeleria(ctx context.Context, userID string, limit int) ([]repository.ROIRow, error) {
	// HAVING SUM(costo) > 0: sin inversión no hay ROI definible.
	query := `
		SELECT p.nombre,
		       (SUM(t.precio) - SUM(t.costo)) / SUM(t.costo) * 100 AS roi
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		GROUP BY p.id, p.nombre
		HAVING SUM(t.costo) > 0
		ORDER BY roi DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ROI por papelería: %w", err)
	}
	defer rows.Close()

	var result []repository.ROIRow
	for rows.Next() {
		var row repository.ROIRow
		if err := rows.Scan(&row.Nombre, &row.ROI); err != nil {
			return nil, fmt.Errorf("escanear ROI: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) RentabilidadPorTramite(ctx context.Context, userID string) ([]repository.RentabilidadRow, error) {
	query := `
		SELECT t.tramite,
		       COUNT(*),
		       COALESCE(AVG(t.precio - t.costo), 0),
		       COALESCE(SUM(t.precio - t.costo), 0) AS ganancia
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1
		GROUP BY t.tramite
		ORDER BY ganancia DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("rentabilidad por trámite: %w", err)
	}
	defer rows.Close()

	var result []repository.RentabilidadRow
	for rows.Next() {
		var row repository.RentabilidadRow
		if err := rows.Scan(&row.Tramite, &row.Cuantos, &row.MargenPromedio, &row.GananciaTotal); err != nil {
			return nil, fmt.Errorf("escanear rentabilidad: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepo) CostoPromedioTramite(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(AVG(t.costo), 0)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1`

	var promedio decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&promedio); err != nil {
		return decimal.Zero, fmt.Errorf("costo promedio: %w", err)
	}
	return promedio, nil
}

func (r *AnalyticsRepo) CountTramitesByFecha(ctx context.Context, userID string, fecha time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tramites t
		JOIN papelerias p ON p.id = t.papeleria_id AND p.is_active
		WHERE t.user_id = $1 AND t.fecha = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, fecha).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar trámites del día: %w", err)
	}
	return count, nil
}
