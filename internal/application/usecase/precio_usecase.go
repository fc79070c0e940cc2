package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/normalize"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

// PrecioUseCase precios por papelería y costos por defecto de trámites.
type PrecioUseCase struct {
	precios    repository.PrecioRepository
	costos     repository.CostoRepository
	papelerias repository.PapeleriaRepository
	tramites   repository.TramiteRepository
	log        *logger.Logger
}

func NewPrecioUseCase(
	precios repository.PrecioRepository,
	costos repository.CostoRepository,
	papelerias repository.PapeleriaRepository,
	tramites repository.TramiteRepository,
	log *logger.Logger,
) *PrecioUseCase {
	return &PrecioUseCase{
		precios:    precios,
		costos:     costos,
		papelerias: papelerias,
		tramites:   tramites,
		log:        log,
	}
}

// SetPrecios guarda los precios de una papelería. Los valores en blanco se
// omiten; el resto se valida completo antes de tocar la base: un solo valor
// inválido aborta el guardado y la respuesta lista todos los errores, uno por
// trámite, para que el formulario los muestre junto a cada campo.
func (uc *PrecioUseCase) SetPrecios(ctx context.Context, papeleriaID, userID string, req dto.SetPreciosRequest) (*dto.SetPreciosResponse, error) {
	p, err := uc.papelerias.GetByID(ctx, papeleriaID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: papelería no encontrada", domain.ErrNotFound)
	}

	validos, errores := parseMontos(req.Precios)
	if len(errores) > 0 {
		return &dto.SetPreciosResponse{Errores: errores}, nil
	}

	if len(validos) > 0 {
		if err := uc.precios.SetBulk(ctx, papeleriaID, validos); err != nil {
			return nil, err
		}
		uc.log.Info().Str("papeleria_id", papeleriaID).Int("precios", len(validos)).Msg("precios guardados")
	}

	total, err := uc.precios.CountForPapeleria(ctx, papeleriaID)
	if err != nil {
		return nil, err
	}
	return &dto.SetPreciosResponse{Guardados: len(validos), TotalConfigurados: total}, nil
}

// parseMontos valida un mapa de montos crudos. Devuelve los válidos y la lista
// de errores encontrados; las claves en blanco se saltan sin error.
func parseMontos(crudos map[string]string) (map[string]decimal.Decimal, []string) {
	validos := make(map[string]decimal.Decimal, len(crudos))
	var errores []string

	claves := make([]string, 0, len(crudos))
	for k := range crudos {
		claves = append(claves, k)
	}
	sort.Strings(claves) // errores en orden estable

	for _, tramite := range claves {
		crudo := strings.TrimSpace(crudos[tramite])
		if crudo == "" {
			continue
		}
		monto, err := decimal.NewFromString(crudo)
		if err != nil {
			errores = append(errores, fmt.Sprintf("%s: %q no es un número", tramite, crudo))
			continue
		}
		if monto.IsNegative() {
			errores = append(errores, fmt.Sprintf("%s: no puede ser negativo", tramite))
			continue
		}
		validos[normalize.Nombre(tramite)] = monto
	}
	return validos, errores
}

// GetConfig arma la pantalla de configuración de una papelería: una fila por
// trámite del catálogo (predefinidos + registrados) con su costo general y el
// precio específico si existe.
func (uc *PrecioUseCase) GetConfig(ctx context.Context, papeleriaID, userID string) ([]dto.PrecioConfigRow, error) {
	p, err := uc.papelerias.GetByID(ctx, papeleriaID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: papelería no encontrada", domain.ErrNotFound)
	}

	costos, err := uc.costos.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	precios, err := uc.precios.GetAllForPapeleria(ctx, papeleriaID)
	if err != nil {
		return nil, err
	}
	registrados, err := uc.tramites.Distinct(ctx, userID)
	if err != nil {
		return nil, err
	}

	vistos := make(map[string]struct{})
	var nombres []string
	for _, n := range entity.TramitesPredefinidos {
		vistos[n] = struct{}{}
		nombres = append(nombres, n)
	}
	for _, n := range registrados {
		if _, ok := vistos[n]; !ok {
			vistos[n] = struct{}{}
			nombres = append(nombres, n)
		}
	}

	rows := make([]dto.PrecioConfigRow, 0, len(nombres))
	for _, n := range nombres {
		row := dto.PrecioConfigRow{Tramite: n}
		if c, ok := costos[n]; ok {
			row.CostoGeneral = dto.MoneyPtr(&c)
		}
		if pr, ok := precios[n]; ok {
			row.PrecioEspecifico = dto.MoneyPtr(&pr)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetPrecioCosto autocompletado al capturar un cobro: precio pactado con la
// papelería y costo por defecto del trámite, cualquiera puede faltar.
func (uc *PrecioUseCase) GetPrecioCosto(ctx context.Context, papeleriaID, tramite, userID string) (*dto.PrecioCostoResponse, error) {
	nombre := normalize.Nombre(tramite)
	if nombre == "" {
		return nil, fmt.Errorf("%w: trámite requerido", domain.ErrInvalidInput)
	}

	precio, err := uc.precios.GetPrecio(ctx, papeleriaID, nombre, userID)
	if err != nil {
		return nil, err
	}
	costo, err := uc.costos.GetForTramite(ctx, userID, nombre)
	if err != nil {
		return nil, err
	}
	return &dto.PrecioCostoResponse{
		Precio: dto.MoneyPtr(precio),
		Costo:  dto.MoneyPtr(costo),
	}, nil
}

// SetCosto guarda el costo por defecto de un trámite (upsert).
func (uc *PrecioUseCase) SetCosto(ctx context.Context, userID string, req dto.SetCostoRequest) error {
	nombre := normalize.Nombre(req.Tramite)
	if nombre == "" {
		return fmt.Errorf("%w: trámite requerido", domain.ErrInvalidInput)
	}
	crudo := strings.TrimSpace(req.Costo)
	if crudo == "" {
		return fmt.Errorf("%w: costo requerido", domain.ErrInvalidInput)
	}
	costo, err := decimal.NewFromString(crudo)
	if err != nil {
		return fmt.Errorf("%w: %q no es un número", domain.ErrInvalidInput, crudo)
	}
	if costo.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
	}
	return uc.costos.Set(ctx, userID, nombre, costo)
}

// GetCostos todos los costos por defecto del usuario.
func (uc *PrecioUseCase) GetCostos(ctx context.Context, userID string) (map[string]float64, error) {
	costos, err := uc.costos.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make(map[string]float64, len(costos))
	for tramite, c := range costos {
		resp[tramite] = dto.Money(c)
	}
	return resp, nil
}

// Backfill asigna el costo por defecto a los cobros históricos con costo cero.
func (uc *PrecioUseCase) Backfill(ctx context.Context, userID string) (*dto.BackfillResponse, error) {
	n, err := uc.costos.BackfillCostosCero(ctx, userID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("actualizados", n).Msg("backfill de costos")
	return &dto.BackfillResponse{Actualizados: n}, nil
}
