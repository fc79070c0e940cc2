package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// mesesResumenDefault meses que cubre el resumen cuando no viene un rango.
const mesesResumenDefault = 12

// SummaryUseCase resumen financiero mensual con comparativa contra el mes
// anterior.
type SummaryUseCase struct {
	analytics repository.AnalyticsRepository
	now       func() time.Time
}

func NewSummaryUseCase(analytics repository.AnalyticsRepository) *SummaryUseCase {
	return &SummaryUseCase{analytics: analytics, now: time.Now}
}

// ResumenMensual series mensuales del rango pedido; sin rango cubre los
// últimos doce meses. El inicio se alinea al primero de su mes y los meses
// sin actividad aparecen en cero: las series siempre están alineadas y
// completas. El egreso de un mes suma los costos de los trámites más los
// gastos generales, y la ganancia descuenta ambos.
func (uc *SummaryUseCase) ResumenMensual(ctx context.Context, userID string, rango *repository.Rango) (*dto.ResumenMensualResponse, error) {
	hoy := uc.now().UTC()
	desde := inicioDeMes(hoy).AddDate(0, -(mesesResumenDefault - 1), 0)
	hasta := hoy
	if rango != nil {
		desde = inicioDeMes(rango.Desde)
		hasta = rango.Hasta
	}
	claves := mesesEntre(desde, hasta)

	var (
		wg          sync.WaitGroup
		tramiteRows []repository.MonthRow
		gastoRows   []repository.GastoMonthRow
		errT, errG  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tramiteRows, errT = uc.analytics.MonthlyTramiteRows(ctx, userID, desde, hasta)
	}()
	go func() {
		defer wg.Done()
		gastoRows, errG = uc.analytics.MonthlyGastoRows(ctx, userID, desde, hasta)
	}()
	wg.Wait()
	if errT != nil {
		return nil, errT
	}
	if errG != nil {
		return nil, errG
	}

	porMes := make(map[string]repository.MonthRow, len(tramiteRows))
	for _, row := range tramiteRows {
		porMes[row.Mes] = row
	}
	gastoPorMes := make(map[string]decimal.Decimal, len(gastoRows))
	for _, row := range gastoRows {
		gastoPorMes[row.Mes] = row.Monto
	}

	serie := dto.SerieMensual{
		Meses:     claves,
		Ingresos:  make([]float64, len(claves)),
		Costos:    make([]float64, len(claves)),
		Ganancias: make([]float64, len(claves)),
	}
	gastos := make([]float64, len(claves))
	ingresosPorMes := make([]decimal.Decimal, len(claves))
	egresosPorMes := make([]decimal.Decimal, len(claves))
	gananciaPorMes := make([]decimal.Decimal, len(claves))

	var totalIngresos, totalEgresos, totalGastos decimal.Decimal
	for i, mes := range claves {
		row := porMes[mes] // cero si el mes no tuvo actividad
		gasto := gastoPorMes[mes]
		egreso := row.Costos.Add(gasto)
		ganancia := row.Ingresos.Sub(egreso)

		serie.Ingresos[i] = dto.Money(row.Ingresos)
		serie.Costos[i] = dto.Money(egreso)
		serie.Ganancias[i] = dto.Money(ganancia)
		gastos[i] = dto.Money(gasto)

		ingresosPorMes[i] = row.Ingresos
		egresosPorMes[i] = egreso
		gananciaPorMes[i] = ganancia

		totalIngresos = totalIngresos.Add(row.Ingresos)
		totalEgresos = totalEgresos.Add(egreso)
		totalGastos = totalGastos.Add(gasto)
	}

	comparativa := dto.ComparativaMensual{}
	if n := len(claves); n >= 2 {
		comparativa = dto.ComparativaMensual{
			IngresosActual:    dto.Money(ingresosPorMes[n-1]),
			IngresosAnterior:  dto.Money(ingresosPorMes[n-2]),
			CostosActual:      dto.Money(egresosPorMes[n-1]),
			CostosAnterior:    dto.Money(egresosPorMes[n-2]),
			GananciaActual:    dto.Money(gananciaPorMes[n-1]),
			GananciaAnterior:  dto.Money(gananciaPorMes[n-2]),
			CambioIngresosPct: pctChange(ingresosPorMes[n-2], ingresosPorMes[n-1]),
			CambioCostosPct:   pctChange(egresosPorMes[n-2], egresosPorMes[n-1]),
			CambioGananciaPct: pctChange(gananciaPorMes[n-2], gananciaPorMes[n-1]),
		}
	}

	return &dto.ResumenMensualResponse{
		Serie:       serie,
		Gastos:      gastos,
		Comparativa: comparativa,
		Totales: dto.TotalesResumen{
			Ingresos: dto.Money(totalIngresos),
			Costos:   dto.Money(totalEgresos),
			Gastos:   dto.Money(totalGastos),
			Ganancia: dto.Money(totalIngresos.Sub(totalEgresos)),
		},
	}, nil
}
