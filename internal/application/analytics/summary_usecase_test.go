package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

func rangoDe(desde, hasta time.Time) *repository.Rango {
	return &repository.Rango{Desde: desde, Hasta: hasta}
}

func TestResumenMensualRellenaMesesSinActividad(t *testing.T) {
	// Solo enero y marzo tienen trámites; febrero debe aparecer igual, con el
	// gasto general como único egreso.
	fake := &fakeAnalytics{
		monthRows: []repository.MonthRow{
			{Mes: "2026-01", Ingresos: decimal.NewFromInt(1000), Costos: decimal.NewFromInt(400)},
			{Mes: "2026-03", Ingresos: decimal.NewFromInt(500), Costos: decimal.NewFromInt(100)},
		},
		gastoRows: []repository.GastoMonthRow{
			{Mes: "2026-02", Monto: decimal.NewFromInt(250)},
		},
	}
	uc := NewSummaryUseCase(fake)

	rango := rangoDe(
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), // se alinea al 1º
		time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	)
	resp, err := uc.ResumenMensual(context.Background(), "u1", rango)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, resp.Serie.Meses)
	assert.Equal(t, []float64{1000, 0, 500}, resp.Serie.Ingresos)
	assert.Equal(t, []float64{400, 250, 100}, resp.Serie.Costos)
	assert.Equal(t, []float64{600, -250, 400}, resp.Serie.Ganancias)
	assert.Equal(t, []float64{0, 250, 0}, resp.Gastos)

	assert.Equal(t, 1500.0, resp.Totales.Ingresos)
	assert.Equal(t, 750.0, resp.Totales.Costos)
	assert.Equal(t, 250.0, resp.Totales.Gastos)
	assert.Equal(t, 750.0, resp.Totales.Ganancia)
}

// La ganancia de un mes descuenta tanto los costos de trámites como los
// gastos generales del mismo mes.
func TestResumenMensualGastosRestanDeLaGanancia(t *testing.T) {
	fake := &fakeAnalytics{
		monthRows: []repository.MonthRow{
			{Mes: "2026-03", Ingresos: decimal.NewFromInt(150), Costos: decimal.NewFromInt(60)},
		},
		gastoRows: []repository.GastoMonthRow{
			{Mes: "2026-03", Monto: decimal.NewFromInt(40)},
		},
	}
	uc := NewSummaryUseCase(fake)

	rango := rangoDe(
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	resp, err := uc.ResumenMensual(context.Background(), "u1", rango)
	require.NoError(t, err)

	require.Len(t, resp.Serie.Ganancias, 1)
	assert.Equal(t, 100.0, resp.Serie.Costos[0])
	assert.Equal(t, 50.0, resp.Serie.Ganancias[0])
	assert.Equal(t, 50.0, resp.Totales.Ganancia)
}

func TestResumenMensualComparativa(t *testing.T) {
	fake := &fakeAnalytics{
		monthRows: []repository.MonthRow{
			{Mes: "2026-02", Ingresos: decimal.NewFromInt(100), Costos: decimal.NewFromInt(50)},
			{Mes: "2026-03", Ingresos: decimal.NewFromInt(150), Costos: decimal.NewFromInt(50)},
		},
		gastoRows: []repository.GastoMonthRow{
			{Mes: "2026-02", Monto: decimal.NewFromInt(10)},
			{Mes: "2026-03", Monto: decimal.NewFromInt(30)},
		},
	}
	uc := NewSummaryUseCase(fake)

	rango := rangoDe(
		time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	)
	resp, err := uc.ResumenMensual(context.Background(), "u1", rango)
	require.NoError(t, err)

	c := resp.Comparativa
	assert.Equal(t, 150.0, c.IngresosActual)
	assert.Equal(t, 100.0, c.IngresosAnterior)
	assert.Equal(t, 50.0, c.CambioIngresosPct)
	assert.Equal(t, 80.0, c.CostosActual)
	assert.Equal(t, 60.0, c.CostosAnterior)
	assert.Equal(t, 33.3, c.CambioCostosPct)
	assert.Equal(t, 70.0, c.GananciaActual)
	assert.Equal(t, 40.0, c.GananciaAnterior)
	assert.Equal(t, 75.0, c.CambioGananciaPct)
}

// Sin rango el resumen cubre los últimos doce meses terminando en el actual.
func TestResumenMensualRangoDefaultDoceMeses(t *testing.T) {
	uc := NewSummaryUseCase(&fakeAnalytics{})
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	}

	resp, err := uc.ResumenMensual(context.Background(), "u1", nil)
	require.NoError(t, err)

	require.Len(t, resp.Serie.Meses, 12)
	assert.Equal(t, "2025-04", resp.Serie.Meses[0])
	assert.Equal(t, "2026-03", resp.Serie.Meses[11])
}

func TestResumenMensualSinDatos(t *testing.T) {
	uc := NewSummaryUseCase(&fakeAnalytics{})

	rango := rangoDe(
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	)
	resp, err := uc.ResumenMensual(context.Background(), "u1", rango)
	require.NoError(t, err)

	assert.Len(t, resp.Serie.Meses, 3)
	assert.Equal(t, []float64{0, 0, 0}, resp.Serie.Ingresos)
	assert.Equal(t, 0.0, resp.Comparativa.CambioIngresosPct)
	assert.Equal(t, 0.0, resp.Comparativa.CambioGananciaPct)
	assert.Equal(t, 0.0, resp.Totales.Ganancia)
}
