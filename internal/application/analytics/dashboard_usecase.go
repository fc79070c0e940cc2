package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

const (
	topPapeleriasLimit   = 5
	distribucionLimit    = 8
	recientesLimit       = 10
	mesesChartsPapeleria = 6
)

// DashboardUseCase arma las gráficas de la pantalla principal y del detalle
// de una papelería. Las consultas independientes corren en paralelo.
type DashboardUseCase struct {
	analytics  repository.AnalyticsRepository
	tramites   repository.TramiteRepository
	gastos     repository.GastoRepository
	papelerias repository.PapeleriaRepository
	now        func() time.Time
}

func NewDashboardUseCase(
	analytics repository.AnalyticsRepository,
	tramites repository.TramiteRepository,
	gastos repository.GastoRepository,
	papelerias repository.PapeleriaRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analytics:  analytics,
		tramites:   tramites,
		gastos:     gastos,
		papelerias: papelerias,
		now:        time.Now,
	}
}

// Charts datos del dashboard general, con filtro de fechas opcional.
func (uc *DashboardUseCase) Charts(ctx context.Context, userID string, rango *repository.Rango) (*dto.DashboardChartsResponse, error) {
	var (
		wg   sync.WaitGroup
		errs [5]error

		top          []repository.TopPapeleriaRow
		distribucion []repository.DistribucionRow
		gastosPorCat []repository.GastoDistribucionRow
		tramitesRec  []repository.TramiteConPapeleria
		gastosRec    []repository.GastoConProveedor
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		top, errs[0] = uc.analytics.TopPapelerias(ctx, userID, rango, topPapeleriasLimit)
	}()
	go func() {
		defer wg.Done()
		distribucion, errs[1] = uc.analytics.TramiteDistribution(ctx, userID, rango, distribucionLimit)
	}()
	go func() {
		defer wg.Done()
		gastosPorCat, errs[2] = uc.analytics.GastoDistribution(ctx, userID, rango)
	}()
	go func() {
		defer wg.Done()
		tramitesRec, errs[3] = uc.tramites.Recent(ctx, userID, recientesLimit)
	}()
	go func() {
		defer wg.Done()
		gastosRec, errs[4] = uc.gastos.Recent(ctx, userID, recientesLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.DashboardChartsResponse{
		TopPapelerias:        make([]dto.NombreValor, 0, len(top)),
		DistribucionTramites: make([]dto.EtiquetaConteo, 0, len(distribucion)),
		GastosPorCategoria:   make([]dto.NombreValor, 0, len(gastosPorCat)),
		TramitesRecientes:    make([]dto.TramiteConPapeleriaResponse, 0, len(tramitesRec)),
		GastosRecientes:      make([]dto.GastoResponse, 0, len(gastosRec)),
	}
	for _, row := range top {
		resp.TopPapelerias = append(resp.TopPapelerias, dto.NombreValor{Nombre: row.Nombre, Valor: dto.Money(row.Ganancia)})
	}
	for _, row := range distribucion {
		resp.DistribucionTramites = append(resp.DistribucionTramites, dto.EtiquetaConteo{Etiqueta: row.Etiqueta, Cuantos: row.Cuantos})
	}
	for _, row := range gastosPorCat {
		resp.GastosPorCategoria = append(resp.GastosPorCategoria, dto.NombreValor{Nombre: row.Categoria, Valor: dto.Money(row.Monto)})
	}
	for _, t := range tramitesRec {
		resp.TramitesRecientes = append(resp.TramitesRecientes, dto.ToTramiteConPapeleriaResponse(t))
	}
	for _, g := range gastosRec {
		resp.GastosRecientes = append(resp.GastosRecientes, dto.ToGastoResponse(g))
	}
	return resp, nil
}

// ChartsPapeleria gráficas del detalle de una papelería activa: serie mensual
// de los últimos meses, distribución de trámites y totales históricos.
func (uc *DashboardUseCase) ChartsPapeleria(ctx context.Context, papeleriaID, userID string) (*dto.PapeleriaChartsResponse, error) {
	p, err := uc.papelerias.GetByID(ctx, papeleriaID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: papelería no encontrada", domain.ErrNotFound)
	}

	hoy := uc.now().UTC()
	claves := mesesHasta(hoy, mesesChartsPapeleria)
	desde := inicioDeMes(hoy).AddDate(0, -(mesesChartsPapeleria - 1), 0)

	var (
		wg           sync.WaitGroup
		errs         [3]error
		rows         []repository.MonthRow
		distribucion []repository.DistribucionRow
		totales      *repository.Totales
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, errs[0] = uc.analytics.MonthlyTramiteRowsForPapeleria(ctx, papeleriaID, userID, desde, hoy)
	}()
	go func() {
		defer wg.Done()
		distribucion, errs[1] = uc.analytics.TramiteDistributionForPapeleria(ctx, papeleriaID, userID, distribucionLimit)
	}()
	go func() {
		defer wg.Done()
		totales, errs[2] = uc.tramites.TotalsByPapeleria(ctx, papeleriaID, userID, nil)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	porMes := make(map[string]repository.MonthRow, len(rows))
	for _, row := range rows {
		porMes[row.Mes] = row
	}
	serie := dto.SerieMensual{
		Meses:     claves,
		Ingresos:  make([]float64, len(claves)),
		Costos:    make([]float64, len(claves)),
		Ganancias: make([]float64, len(claves)),
	}
	for i, mes := range claves {
		row := porMes[mes]
		serie.Ingresos[i] = dto.Money(row.Ingresos)
		serie.Costos[i] = dto.Money(row.Costos)
		serie.Ganancias[i] = dto.Money(row.Ingresos.Sub(row.Costos))
	}

	resp := &dto.PapeleriaChartsResponse{
		Serie:                serie,
		DistribucionTramites: make([]dto.EtiquetaConteo, 0, len(distribucion)),
		Totales:              dto.ToTotalesResponse(totales),
	}
	for _, row := range distribucion {
		resp.DistribucionTramites = append(resp.DistribucionTramites, dto.EtiquetaConteo{Etiqueta: row.Etiqueta, Cuantos: row.Cuantos})
	}
	return resp, nil
}
