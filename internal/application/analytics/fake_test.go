package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// roiPapeleria datos crudos por papelería para las consultas de ROI del fake.
type roiPapeleria struct {
	nombre   string
	ingresos decimal.Decimal
	costos   decimal.Decimal
}

// fakeAnalytics implementación en memoria del repositorio de analytics para
// probar los casos de uso sin base de datos.
type fakeAnalytics struct {
	monthRows     []repository.MonthRow
	gastoRows     []repository.GastoMonthRow
	gananciaDesde map[string]decimal.Decimal // clave YYYY-MM-DD del inicio
	periodIn      decimal.Decimal
	periodCostos  decimal.Decimal
	mejorMes      *repository.MesGanancia
	porDia        []repository.DiaSemanaRow
	ingresos      decimal.Decimal
	costos        decimal.Decimal
	costoPromedio decimal.Decimal
	roiPapelerias []roiPapeleria
	rentabilidad  []repository.RentabilidadRow
	porFecha      map[string]int // clave YYYY-MM-DD
}

var _ repository.AnalyticsRepository = (*fakeAnalytics)(nil)

func (f *fakeAnalytics) MonthlyTramiteRows(ctx context.Context, userID string, desde, hasta time.Time) ([]repository.MonthRow, error) {
	return f.monthRows, nil
}

func (f *fakeAnalytics) MonthlyTramiteRowsForPapeleria(ctx context.Context, papeleriaID, userID string, desde, hasta time.Time) ([]repository.MonthRow, error) {
	return f.monthRows, nil
}

func (f *fakeAnalytics) MonthlyGastoRows(ctx context.Context, userID string, desde, hasta time.Time) ([]repository.GastoMonthRow, error) {
	return f.gastoRows, nil
}

func (f *fakeAnalytics) PeriodMetrics(ctx context.Context, userID string, desde, hasta time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return f.periodIn, f.periodCostos, nil
}

func (f *fakeAnalytics) TopPapelerias(ctx context.Context, userID string, rango *repository.Rango, limit int) ([]repository.TopPapeleriaRow, error) {
	return nil, nil
}

func (f *fakeAnalytics) TramiteDistribution(ctx context.Context, userID string, rango *repository.Rango, limit int) ([]repository.DistribucionRow, error) {
	return nil, nil
}

func (f *fakeAnalytics) TramiteDistributionForPapeleria(ctx context.Context, papeleriaID, userID string, limit int) ([]repository.DistribucionRow, error) {
	return nil, nil
}

func (f *fakeAnalytics) GastoDistribution(ctx context.Context, userID string, rango *repository.Rango) ([]repository.GastoDistribucionRow, error) {
	return nil, nil
}

func (f *fakeAnalytics) GananciaDesde(ctx context.Context, userID string, desde time.Time) (decimal.Decimal, error) {
	return f.gananciaDesde[desde.Format("2006-01-02")], nil
}

func (f *fakeAnalytics) MejorMes(ctx context.Context, userID string) (*repository.MesGanancia, error) {
	return f.mejorMes, nil
}

func (f *fakeAnalytics) GananciaPorDiaSemana(ctx context.Context, userID string) ([]repository.DiaSemanaRow, error) {
	return f.porDia, nil
}

func (f *fakeAnalytics) MargenTotales(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error) {
	return f.ingresos, f.costos, nil
}

// ROIPorPapeleria reproduce el contrato del puerto: las papelerías sin costo
// acumulado no tienen ROI definible y quedan fuera del resultado.
func (f *fakeAnalytics) ROIPorPapeleria(ctx context.Context, userID string, limit int) ([]repository.ROIRow, error) {
	rows := make([]repository.ROIRow, 0, len(f.roiPapelerias))
	for _, p := range f.roiPapelerias {
		if !p.costos.IsPositive() {
			continue
		}
		rows = append(rows, repository.ROIRow{
			Nombre: p.nombre,
			ROI:    p.ingresos.Sub(p.costos).Div(p.costos).Mul(cien),
		})
		if len(rows) == limit {
			break
		}
	}
	return rows, nil
}

func (f *fakeAnalytics) RentabilidadPorTramite(ctx context.Context, userID string) ([]repository.RentabilidadRow, error) {
	return f.rentabilidad, nil
}

func (f *fakeAnalytics) CostoPromedioTramite(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.costoPromedio, nil
}

func (f *fakeAnalytics) CountTramitesByFecha(ctx context.Context, userID string, fecha time.Time) (int, error) {
	return f.porFecha[fecha.Format("2006-01-02")], nil
}
