package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthRow agregado de trámites de un mes calendario.
type MonthRow struct {
	Mes      string // clave YYYY-MM
	Ingresos decimal.Decimal
	Costos   decimal.Decimal
}

// GastoMonthRow agregado de gastos generales de un mes calendario.
type GastoMonthRow struct {
	Mes   string // clave YYYY-MM
	Monto decimal.Decimal
}

// TopPapeleriaRow papelería con su ganancia acumulada. Las papelerías sin
// trámites aparecen con ganancia cero (outer join).
type TopPapeleriaRow struct {
	Nombre   string
	Ganancia decimal.Decimal
}

// DistribucionRow conteo de trámites por tipo.
type DistribucionRow struct {
	Etiqueta string
	Cuantos  int
}

// GastoDistribucionRow monto de gastos por categoría.
type GastoDistribucionRow struct {
	Categoria string
	Monto     decimal.Decimal
}

// MesGanancia mes calendario con su ganancia total.
type MesGanancia struct {
	Mes      string // YYYY-MM
	Ganancia decimal.Decimal
}

// DiaSemanaRow ganancia y conteo por día de la semana (0=domingo..6=sábado,
// convención de EXTRACT(DOW ...)).
type DiaSemanaRow struct {
	DiaSemana int
	Ganancia  decimal.Decimal
	Cuantos   int
}

// ROIRow retorno sobre el costo por papelería.
type ROIRow struct {
	Nombre string
	ROI    decimal.Decimal // (ingresos-costos)/costos*100
}

// RentabilidadRow rentabilidad por tipo de trámite.
type RentabilidadRow struct {
	Tramite        string
	Cuantos        int
	MargenPromedio decimal.Decimal // promedio de (precio-costo)
	GananciaTotal  decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para los reportes financieros.
// Todas filtran por el usuario dueño y, cuando pasan por papelerías, solo
// consideran papelerías activas: el histórico de una papelería desactivada no
// aparece en los agregados "vigentes".
type AnalyticsRepository interface {
	// MonthlyTramiteRows agrupa ingresos y costos de trámites por YYYY-MM
	// dentro del rango [desde, hasta]. Solo devuelve meses con actividad;
	// el caso de uso rellena los ausentes con ceros.
	MonthlyTramiteRows(ctx context.Context, userID string, desde, hasta time.Time) ([]MonthRow, error)
	MonthlyTramiteRowsForPapeleria(ctx context.Context, papeleriaID, userID string, desde, hasta time.Time) ([]MonthRow, error)
	MonthlyGastoRows(ctx context.Context, userID string, desde, hasta time.Time) ([]GastoMonthRow, error)
	// PeriodMetrics ingresos y costos de trámites en el período (COALESCE a
	// cero si no hay filas).
	PeriodMetrics(ctx context.Context, userID string, desde, hasta time.Time) (ingresos, costos decimal.Decimal, err error)
	TopPapelerias(ctx context.Context, userID string, rango *Rango, limit int) ([]TopPapeleriaRow, error)
	TramiteDistribution(ctx context.Context, userID string, rango *Rango, limit int) ([]DistribucionRow, error)
	TramiteDistributionForPapeleria(ctx context.Context, papeleriaID, userID string, limit int) ([]DistribucionRow, error)
	GastoDistribution(ctx context.Context, userID string, rango *Rango) ([]GastoDistribucionRow, error)
	// GananciaDesde suma (precio-costo) de los trámites desde la fecha dada.
	GananciaDesde(ctx context.Context, userID string, desde time.Time) (decimal.Decimal, error)
	// MejorMes devuelve nil si el usuario no tiene trámites.
	MejorMes(ctx context.Context, userID string) (*MesGanancia, error)
	GananciaPorDiaSemana(ctx context.Context, userID string) ([]DiaSemanaRow, error)
	// MargenTotales ingresos y costos de toda la historia.
	MargenTotales(ctx context.Context, userID string) (ingresos, costos decimal.Decimal, err error)
	// ROIPorPapeleria excluye papelerías con costo total cero (HAVING > 0).
	ROIPorPapeleria(ctx context.Context, userID string, limit int) ([]ROIRow, error)
	RentabilidadPorTramite(ctx context.Context, userID string) ([]RentabilidadRow, error)
	CostoPromedioTramite(ctx context.Context, userID string) (decimal.Decimal, error)
	// CountTramitesByFecha cuenta los trámites registrados en un día.
	CountTramitesByFecha(ctx context.Context, userID string, fecha time.Time) (int, error)
}
