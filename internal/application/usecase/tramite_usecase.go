package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/normalize"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

const maxCantidadPorAlta = 100

// TramiteUseCase registro y consulta de cobros de trámites.
type TramiteUseCase struct {
	tramites   repository.TramiteRepository
	papelerias repository.PapeleriaRepository
	costos     repository.CostoRepository
	log        *logger.Logger
}

func NewTramiteUseCase(
	tramites repository.TramiteRepository,
	papelerias repository.PapeleriaRepository,
	costos repository.CostoRepository,
	log *logger.Logger,
) *TramiteUseCase {
	return &TramiteUseCase{tramites: tramites, papelerias: papelerias, costos: costos, log: log}
}

// Add registra Cantidad cobros idénticos del mismo servicio, en una sola
// transacción. Sin costo explícito se usa el costo por defecto del trámite
// (cero si tampoco existe).
func (uc *TramiteUseCase) Add(ctx context.Context, userID string, req dto.AddTramitesRequest) ([]dto.TramiteResponse, error) {
	tramite := normalize.Nombre(req.Tramite)
	if tramite == "" {
		return nil, fmt.Errorf("%w: trámite requerido", domain.ErrInvalidInput)
	}
	if req.Precio.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	cantidad := req.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}
	if cantidad > maxCantidadPorAlta {
		return nil, fmt.Errorf("%w: máximo %d registros por alta", domain.ErrInvalidInput, maxCantidadPorAlta)
	}

	fecha := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Fecha != "" {
		f, err := dto.ParseFecha(req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fecha = f
	}

	p, err := uc.papelerias.GetByID(ctx, req.PapeleriaID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: papelería no encontrada", domain.ErrNotFound)
	}

	costo := decimal.Zero
	switch {
	case req.Costo != nil:
		if req.Costo.IsNegative() {
			return nil, fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
		}
		costo = *req.Costo
	default:
		def, err := uc.costos.GetForTramite(ctx, userID, tramite)
		if err != nil {
			return nil, err
		}
		if def != nil {
			costo = *def
		}
	}

	now := time.Now().UTC()
	tramitesNuevos := make([]*entity.Tramite, 0, cantidad)
	for i := 0; i < cantidad; i++ {
		tramitesNuevos = append(tramitesNuevos, &entity.Tramite{
			ID:          uuid.New().String(),
			PapeleriaID: p.ID,
			UserID:      userID,
			Tramite:     tramite,
			Fecha:       fecha,
			Precio:      req.Precio,
			Costo:       costo,
			CreatedAt:   now,
		})
	}
	if err := uc.tramites.AddBulk(ctx, tramitesNuevos); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("papeleria_id", p.ID).
		Str("tramite", tramite).
		Int("cantidad", cantidad).
		Msg("trámites registrados")

	resp := make([]dto.TramiteResponse, 0, len(tramitesNuevos))
	for _, t := range tramitesNuevos {
		resp = append(resp, dto.ToTramiteResponse(t))
	}
	return resp, nil
}

// Update edita un cobro existente.
func (uc *TramiteUseCase) Update(ctx context.Context, id, userID string, req dto.UpdateTramiteRequest) (*dto.TramiteResponse, error) {
	existente, err := uc.tramites.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}

	tramite := normalize.Nombre(req.Tramite)
	if tramite == "" {
		return nil, fmt.Errorf("%w: trámite requerido", domain.ErrInvalidInput)
	}
	if req.Precio.IsNegative() || req.Costo.IsNegative() {
		return nil, fmt.Errorf("%w: montos negativos", domain.ErrInvalidInput)
	}
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existente.Tramite = tramite
	existente.Fecha = fecha
	existente.Precio = req.Precio
	existente.Costo = req.Costo
	if err := uc.tramites.Update(ctx, existente); err != nil {
		return nil, err
	}

	resp := dto.ToTramiteResponse(existente)
	return &resp, nil
}

// Delete elimina un cobro.
func (uc *TramiteUseCase) Delete(ctx context.Context, id, userID string) error {
	papeleriaID, err := uc.tramites.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if papeleriaID == "" {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("tramite_id", id).Str("papeleria_id", papeleriaID).Msg("trámite eliminado")
	return nil
}

// ListByPapeleria pagina los cobros de una papelería, con filtro de fechas
// opcional y los totales del mismo filtro.
func (uc *TramiteUseCase) ListByPapeleria(ctx context.Context, papeleriaID, userID string, rango *repository.Rango, page, perPage int) (dto.Page[dto.TramiteResponse], *dto.TotalesResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := uc.tramites.ListByPapeleria(ctx, papeleriaID, userID, rango, page, perPage)
	if err != nil {
		return dto.Page[dto.TramiteResponse]{}, nil, err
	}
	totales, err := uc.tramites.TotalsByPapeleria(ctx, papeleriaID, userID, rango)
	if err != nil {
		return dto.Page[dto.TramiteResponse]{}, nil, err
	}

	resp := make([]dto.TramiteResponse, 0, len(items))
	for _, t := range items {
		resp = append(resp, dto.ToTramiteResponse(t))
	}
	totResp := dto.ToTotalesResponse(totales)
	return dto.NewPage(resp, total, page, perPage), &totResp, nil
}

// TotalsGeneral totales de todas las papelerías activas del usuario.
func (uc *TramiteUseCase) TotalsGeneral(ctx context.Context, userID string, rango *repository.Rango) (*dto.TotalesResponse, error) {
	totales, err := uc.tramites.TotalsGeneral(ctx, userID, rango)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTotalesResponse(totales)
	return &resp, nil
}

// Nombres une el catálogo predefinido con los trámites ya registrados por el
// usuario, sin duplicados y en orden estable.
func (uc *TramiteUseCase) Nombres(ctx context.Context, userID string) ([]string, error) {
	registrados, err := uc.tramites.Distinct(ctx, userID)
	if err != nil {
		return nil, err
	}

	vistos := make(map[string]struct{}, len(entity.TramitesPredefinidos)+len(registrados))
	nombres := make([]string, 0, len(entity.TramitesPredefinidos)+len(registrados))
	for _, n := range entity.TramitesPredefinidos {
		vistos[n] = struct{}{}
		nombres = append(nombres, n)
	}
	for _, n := range registrados {
		if _, ok := vistos[n]; ok {
			continue
		}
		vistos[n] = struct{}{}
		nombres = append(nombres, n)
	}
	return nombres, nil
}
