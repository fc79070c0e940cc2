package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

const roiLimit = 5

// MetaMensualDefault objetivo de ganancia mensual cuando el usuario no ha
// configurado uno propio.
var MetaMensualDefault = decimal.NewFromInt(10000)

// AvanzadoUseCase panel de indicadores avanzados: meta mensual, mejor mes,
// día más productivo, margen, ROI, rentabilidad por trámite, proyección del
// mes y comparación hoy contra ayer.
type AvanzadoUseCase struct {
	analytics repository.AnalyticsRepository
	meta      decimal.Decimal
	now       func() time.Time
}

func NewAvanzadoUseCase(analytics repository.AnalyticsRepository) *AvanzadoUseCase {
	return &AvanzadoUseCase{analytics: analytics, meta: MetaMensualDefault, now: time.Now}
}

// Avanzado arma el panel completo. La meta mensual puede venir del request;
// cero o negativa usa el default. Las consultas independientes corren en
// paralelo; cualquier error aborta el panel entero.
func (uc *AvanzadoUseCase) Avanzado(ctx context.Context, userID string, meta decimal.Decimal) (*dto.AnalyticsAvanzadoResponse, error) {
	if !meta.IsPositive() {
		meta = uc.meta
	}
	hoy := uc.now().UTC().Truncate(24 * time.Hour)
	ayer := hoy.AddDate(0, 0, -1)
	lunes := inicioDeSemana(hoy)
	primeroDeMes := inicioDeMes(hoy)

	var (
		wg   sync.WaitGroup
		errs [9]error

		gananciaSemana   decimal.Decimal
		gananciaMes      decimal.Decimal
		mejorMes         *repository.MesGanancia
		porDia           []repository.DiaSemanaRow
		ingresos, costos decimal.Decimal
		costoPromedio    decimal.Decimal
		roi              []repository.ROIRow
		rentabilidad     []repository.RentabilidadRow
		cuantosHoy       int
		cuantosAyer      int
	)

	wg.Add(9)
	go func() {
		defer wg.Done()
		gananciaSemana, errs[0] = uc.analytics.GananciaDesde(ctx, userID, lunes)
	}()
	go func() {
		defer wg.Done()
		var ingresosMes, costosMes decimal.Decimal
		ingresosMes, costosMes, errs[1] = uc.analytics.PeriodMetrics(ctx, userID, primeroDeMes, hoy)
		gananciaMes = ingresosMes.Sub(costosMes)
	}()
	go func() {
		defer wg.Done()
		mejorMes, errs[2] = uc.analytics.MejorMes(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		porDia, errs[3] = uc.analytics.GananciaPorDiaSemana(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		ingresos, costos, errs[4] = uc.analytics.MargenTotales(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		costoPromedio, errs[5] = uc.analytics.CostoPromedioTramite(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		roi, errs[6] = uc.analytics.ROIPorPapeleria(ctx, userID, roiLimit)
	}()
	go func() {
		defer wg.Done()
		rentabilidad, errs[7] = uc.analytics.RentabilidadPorTramite(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		var err error
		cuantosHoy, err = uc.analytics.CountTramitesByFecha(ctx, userID, hoy)
		if err == nil {
			cuantosAyer, err = uc.analytics.CountTramitesByFecha(ctx, userID, ayer)
		}
		errs[8] = err
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.AnalyticsAvanzadoResponse{
		Meta: dto.MetaResponse{
			Objetivo:        dto.Money(meta),
			GananciaMes:     dto.Money(gananciaMes),
			GananciaSemana:  dto.Money(gananciaSemana),
			ProgresoPct:     progresoMeta(gananciaMes, meta),
			Falta:           dto.Money(decimal.Max(decimal.Zero, meta.Sub(gananciaMes))),
			DiasParaDomingo: diasParaDomingo(hoy),
		},
		Margen: dto.MargenResponse{
			Ingresos:      dto.Money(ingresos),
			Costos:        dto.Money(costos),
			MargenPct:     margenPct(ingresos, costos),
			CostoPromedio: dto.Money(costoPromedio),
		},
		ROI:          make([]dto.NombreValor, 0, len(roi)),
		Rentabilidad: make([]dto.RentabilidadResponse, 0, len(rentabilidad)),
		Proyeccion:   proyeccionMes(gananciaMes, hoy),
		HoyVsAyer: dto.HoyVsAyerResponse{
			Hoy:       cuantosHoy,
			Ayer:      cuantosAyer,
			CambioPct: pctChange(decimal.NewFromInt(int64(cuantosAyer)), decimal.NewFromInt(int64(cuantosHoy))),
		},
	}

	if mejorMes != nil {
		resp.MejorMes = &dto.MejorMesResponse{Mes: mejorMes.Mes, Ganancia: dto.Money(mejorMes.Ganancia)}
	}
	if dia := diaMasProductivo(porDia); dia != nil {
		resp.DiaMasProductivo = dia
	}
	for _, row := range roi {
		resp.ROI = append(resp.ROI, dto.NombreValor{Nombre: row.Nombre, Valor: dto.Pct(row.ROI)})
	}
	for _, row := range rentabilidad {
		resp.Rentabilidad = append(resp.Rentabilidad, dto.RentabilidadResponse{
			Tramite:        row.Tramite,
			Cuantos:        row.Cuantos,
			MargenPromedio: dto.Money(row.MargenPromedio),
			GananciaTotal:  dto.Money(row.GananciaTotal),
		})
	}
	return resp, nil
}

func progresoMeta(ganancia, meta decimal.Decimal) float64 {
	if meta.IsZero() {
		return 0
	}
	return dto.Pct(ganancia.Div(meta).Mul(cien))
}

// margenPct (ingresos-costos)/ingresos*100; cero si no hubo ingresos.
func margenPct(ingresos, costos decimal.Decimal) float64 {
	if ingresos.IsZero() {
		return 0
	}
	return dto.Pct(ingresos.Sub(costos).Div(ingresos).Mul(cien))
}

// proyeccionMes extrapola la ganancia del mes al ritmo de los días ya
// transcurridos: ganancia/diasTranscurridos*diasDelMes.
func proyeccionMes(gananciaMes decimal.Decimal, hoy time.Time) dto.ProyeccionResponse {
	diasTranscurridos := hoy.Day()
	diasDelMes := inicioDeMes(hoy).AddDate(0, 1, -1).Day()

	proyeccion := decimal.Zero
	if diasTranscurridos > 0 {
		proyeccion = gananciaMes.
			Div(decimal.NewFromInt(int64(diasTranscurridos))).
			Mul(decimal.NewFromInt(int64(diasDelMes)))
	}
	return dto.ProyeccionResponse{
		GananciaMes:       dto.Money(gananciaMes),
		DiasTranscurridos: diasTranscurridos,
		DiasDelMes:        diasDelMes,
		Proyeccion:        dto.Money(proyeccion),
	}
}

// diaMasProductivo día de la semana con más ganancia acumulada; nil sin datos.
func diaMasProductivo(rows []repository.DiaSemanaRow) *dto.DiaProductivoResponse {
	if len(rows) == 0 {
		return nil
	}
	mejor := rows[0]
	for _, row := range rows[1:] {
		if row.Ganancia.GreaterThan(mejor.Ganancia) {
			mejor = row
		}
	}
	if mejor.DiaSemana < 0 || mejor.DiaSemana > 6 {
		return nil
	}
	return &dto.DiaProductivoResponse{
		Dia:      nombresDia[mejor.DiaSemana],
		Ganancia: dto.Money(mejor.Ganancia),
		Cuantos:  mejor.Cuantos,
	}
}
