package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/normalize"
	"github.com/docuexpress/docuexpress-api/internal/domain/papeleria"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

// PapeleriaUseCase altas, bajas y listado de papelerías.
type PapeleriaUseCase struct {
	papelerias repository.PapeleriaRepository
	log        *logger.Logger
}

func NewPapeleriaUseCase(papelerias repository.PapeleriaRepository, log *logger.Logger) *PapeleriaUseCase {
	return &PapeleriaUseCase{papelerias: papelerias, log: log}
}

// Add da de alta una papelería. Si existe una activa con el mismo nombre
// normalizado es un duplicado; si existe una inactiva se reactiva conservando
// su ID y todo su histórico de trámites.
func (uc *PapeleriaUseCase) Add(ctx context.Context, userID string, req dto.CreatePapeleriaRequest) (*dto.PapeleriaResponse, error) {
	nombre := normalize.Nombre(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}

	existente, err := uc.papelerias.FindByNombre(ctx, userID, nombre)
	if err != nil {
		return nil, err
	}

	var estado *papeleria.Estado
	if existente != nil {
		e := papeleria.Inactiva
		if existente.IsActive {
			e = papeleria.Activa
		}
		estado = &e
	}

	switch tr := papeleria.Resolve(estado); tr.Accion {
	case papeleria.Rechazar:
		return nil, fmt.Errorf("%w: ya existe la papelería %s", domain.ErrDuplicate, nombre)

	case papeleria.Reactivar:
		if err := uc.papelerias.Reactivate(ctx, existente.ID); err != nil {
			return nil, err
		}
		uc.log.Info().Str("papeleria_id", existente.ID).Str("nombre", nombre).Msg("papelería reactivada")
		return &dto.PapeleriaResponse{ID: existente.ID, Nombre: nombre, Reactivada: true}, nil

	default:
		now := time.Now().UTC()
		p := &entity.Papeleria{
			ID:        uuid.New().String(),
			UserID:    userID,
			Nombre:    nombre,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.papelerias.Create(ctx, p); err != nil {
			return nil, err
		}
		uc.log.Info().Str("papeleria_id", p.ID).Str("nombre", nombre).Msg("papelería creada")
		return &dto.PapeleriaResponse{ID: p.ID, Nombre: nombre}, nil
	}
}

// List papelerías activas con sus totales, con búsqueda opcional por nombre.
func (uc *PapeleriaUseCase) List(ctx context.Context, userID, search string) ([]dto.PapeleriaStatsResponse, error) {
	stats, err := uc.papelerias.ListWithStats(ctx, userID, normalize.Nombre(search))
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PapeleriaStatsResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, dto.ToPapeleriaStatsResponse(s))
	}
	return resp, nil
}

// Nombres listado ligero (id y nombre) de las papelerías activas, pensado
// para los selectores del frontend.
func (uc *PapeleriaUseCase) Nombres(ctx context.Context, userID string) ([]dto.PapeleriaResponse, error) {
	items, err := uc.papelerias.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PapeleriaResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, dto.PapeleriaResponse{ID: p.ID, Nombre: p.Nombre})
	}
	return resp, nil
}

// Rename cambia el nombre validando que no choque con otra papelería activa.
func (uc *PapeleriaUseCase) Rename(ctx context.Context, id, userID string, req dto.UpdatePapeleriaRequest) (*dto.PapeleriaResponse, error) {
	nombre := normalize.Nombre(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}

	taken, err := uc.papelerias.ExistsWithNombre(ctx, userID, nombre, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: ya existe la papelería %s", domain.ErrDuplicate, nombre)
	}

	if err := uc.papelerias.UpdateNombre(ctx, id, userID, nombre); err != nil {
		return nil, err
	}
	return &dto.PapeleriaResponse{ID: id, Nombre: nombre}, nil
}

// Delete baja lógica: la papelería deja de aparecer pero su histórico queda.
func (uc *PapeleriaUseCase) Delete(ctx context.Context, id, userID string) error {
	if err := uc.papelerias.SoftDelete(ctx, id, userID); err != nil {
		return err
	}
	uc.log.Info().Str("papeleria_id", id).Msg("papelería desactivada")
	return nil
}
