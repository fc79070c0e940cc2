package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/normalize"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

const buscarScanLimit = 200

// BuscarUseCase búsqueda global sobre papelerías, trámites, proveedores y
// gastos del usuario.
type BuscarUseCase struct {
	papelerias  repository.PapeleriaRepository
	tramites    repository.TramiteRepository
	proveedores repository.ProveedorRepository
	gastos      repository.GastoRepository
}

func NewBuscarUseCase(
	papelerias repository.PapeleriaRepository,
	tramites repository.TramiteRepository,
	proveedores repository.ProveedorRepository,
	gastos repository.GastoRepository,
) *BuscarUseCase {
	return &BuscarUseCase{
		papelerias:  papelerias,
		tramites:    tramites,
		proveedores: proveedores,
		gastos:      gastos,
	}
}

// Buscar ejecuta las cuatro consultas en paralelo. El término se normaliza
// igual que los nombres, así "papelería ángel" encuentra "PAPELERIA ANGEL".
func (uc *BuscarUseCase) Buscar(ctx context.Context, userID, termino string) (*dto.BuscarResponse, error) {
	q := normalize.Nombre(termino)
	if q == "" {
		return nil, fmt.Errorf("%w: término de búsqueda requerido", domain.ErrInvalidInput)
	}

	resp := &dto.BuscarResponse{
		Papelerias:  []dto.PapeleriaStatsResponse{},
		Tramites:    []dto.TramiteConPapeleriaResponse{},
		Proveedores: []dto.ProveedorResponse{},
		Gastos:      []dto.GastoResponse{},
	}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		stats, err := uc.papelerias.ListWithStats(ctx, userID, q)
		if err != nil {
			errs[0] = err
			return
		}
		for _, s := range stats {
			resp.Papelerias = append(resp.Papelerias, dto.ToPapeleriaStatsResponse(s))
		}
	}()
	go func() {
		defer wg.Done()
		recientes, err := uc.tramites.Recent(ctx, userID, buscarScanLimit)
		if err != nil {
			errs[1] = err
			return
		}
		for _, t := range recientes {
			if strings.Contains(t.Tramite.Tramite, q) || strings.Contains(t.PapeleriaNombre, q) {
				resp.Tramites = append(resp.Tramites, dto.ToTramiteConPapeleriaResponse(t))
			}
		}
	}()
	go func() {
		defer wg.Done()
		proveedores, err := uc.proveedores.GetAll(ctx, userID)
		if err != nil {
			errs[2] = err
			return
		}
		for _, p := range proveedores {
			if strings.Contains(p.Nombre, q) {
				resp.Proveedores = append(resp.Proveedores, dto.ToProveedorResponse(p))
			}
		}
	}()
	go func() {
		defer wg.Done()
		gastos, err := uc.gastos.Recent(ctx, userID, buscarScanLimit)
		if err != nil {
			errs[3] = err
			return
		}
		for _, g := range gastos {
			descripcion := normalize.Nombre(g.Descripcion)
			categoria := normalize.Nombre(g.Categoria)
			if strings.Contains(descripcion, q) || strings.Contains(categoria, q) || strings.Contains(g.ProveedorNombre, q) {
				resp.Gastos = append(resp.Gastos, dto.ToGastoResponse(g))
			}
		}
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}
