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

func TestAvanzadoMetaYProyeccion(t *testing.T) {
	// Miércoles 18 de marzo de 2026; la semana empezó el lunes 16.
	hoy := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, hoy.Weekday())

	fake := &fakeAnalytics{
		gananciaDesde: map[string]decimal.Decimal{
			"2026-03-16": decimal.NewFromInt(2500), // semana
		},
		periodIn:     decimal.NewFromInt(12000), // mes en curso
		periodCostos: decimal.NewFromInt(3000),
		porFecha: map[string]int{
			"2026-03-18": 6,
			"2026-03-17": 4,
		},
	}
	uc := NewAvanzadoUseCase(fake)
	uc.now = func() time.Time { return hoy }

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, resp.Meta.Objetivo)
	assert.Equal(t, 2500.0, resp.Meta.GananciaSemana)
	// El avance hacia la meta se mide con la ganancia del mes: 9000/10000.
	assert.Equal(t, 9000.0, resp.Meta.GananciaMes)
	assert.Equal(t, 90.0, resp.Meta.ProgresoPct)
	assert.Equal(t, 1000.0, resp.Meta.Falta)
	assert.Equal(t, 4, resp.Meta.DiasParaDomingo)

	// (12000-3000) / 18 días * 31 días de marzo = 15500
	assert.Equal(t, 9000.0, resp.Proyeccion.GananciaMes)
	assert.Equal(t, 18, resp.Proyeccion.DiasTranscurridos)
	assert.Equal(t, 31, resp.Proyeccion.DiasDelMes)
	assert.Equal(t, 15500.0, resp.Proyeccion.Proyeccion)

	assert.Equal(t, 6, resp.HoyVsAyer.Hoy)
	assert.Equal(t, 4, resp.HoyVsAyer.Ayer)
	assert.Equal(t, 50.0, resp.HoyVsAyer.CambioPct)
}

func TestAvanzadoMetaPersonalizada(t *testing.T) {
	fake := &fakeAnalytics{periodIn: decimal.NewFromInt(2500)}
	uc := NewAvanzadoUseCase(fake)
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	}

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.Equal(t, 5000.0, resp.Meta.Objetivo)
	assert.Equal(t, 50.0, resp.Meta.ProgresoPct)
	assert.Equal(t, 2500.0, resp.Meta.Falta)
}

// Una papelería sin costo acumulado no tiene ROI definible y no debe aparecer
// en el ranking.
func TestAvanzadoROIExcluyePapeleriasSinCosto(t *testing.T) {
	fake := &fakeAnalytics{
		roiPapelerias: []roiPapeleria{
			{nombre: "CENTRO", ingresos: decimal.NewFromInt(1500), costos: decimal.NewFromInt(1000)},
			{nombre: "REGALADA", ingresos: decimal.NewFromInt(500), costos: decimal.Zero},
		},
	}
	uc := NewAvanzadoUseCase(fake)
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	}

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.Zero)
	require.NoError(t, err)
	require.Len(t, resp.ROI, 1)
	assert.Equal(t, "CENTRO", resp.ROI[0].Nombre)
	assert.Equal(t, 50.0, resp.ROI[0].Valor)
}

func TestAvanzadoDomingoCierraSemana(t *testing.T) {
	domingo := time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, domingo.Weekday())

	uc := NewAvanzadoUseCase(&fakeAnalytics{})
	uc.now = func() time.Time { return domingo }

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Meta.DiasParaDomingo)
}

func TestAvanzadoDiaMasProductivo(t *testing.T) {
	fake := &fakeAnalytics{
		porDia: []repository.DiaSemanaRow{
			{DiaSemana: 1, Ganancia: decimal.NewFromInt(300), Cuantos: 5},
			{DiaSemana: 5, Ganancia: decimal.NewFromInt(800), Cuantos: 9},
			{DiaSemana: 0, Ganancia: decimal.NewFromInt(100), Cuantos: 2},
		},
	}
	uc := NewAvanzadoUseCase(fake)
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	}

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, resp.DiaMasProductivo)
	assert.Equal(t, "Viernes", resp.DiaMasProductivo.Dia)
	assert.Equal(t, 800.0, resp.DiaMasProductivo.Ganancia)
	assert.Equal(t, 9, resp.DiaMasProductivo.Cuantos)
}

func TestAvanzadoSinDatos(t *testing.T) {
	uc := NewAvanzadoUseCase(&fakeAnalytics{})
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	}

	resp, err := uc.Avanzado(context.Background(), "u1", decimal.Zero)
	require.NoError(t, err)

	assert.Nil(t, resp.MejorMes)
	assert.Nil(t, resp.DiaMasProductivo)
	assert.Empty(t, resp.ROI)
	assert.Equal(t, 0.0, resp.Margen.MargenPct)
	assert.Equal(t, 0.0, resp.HoyVsAyer.CambioPct)
}

func TestMargenPct(t *testing.T) {
	assert.Equal(t, 0.0, margenPct(decimal.Zero, decimal.Zero))
	assert.Equal(t, 60.0, margenPct(decimal.NewFromInt(1000), decimal.NewFromInt(400)))
}
