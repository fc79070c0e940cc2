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
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

// ProveedorUseCase altas, bajas y listado de proveedores.
type ProveedorUseCase struct {
	proveedores repository.ProveedorRepository
	log         *logger.Logger
}

func NewProveedorUseCase(proveedores repository.ProveedorRepository, log *logger.Logger) *ProveedorUseCase {
	return &ProveedorUseCase{proveedores: proveedores, log: log}
}

// Create da de alta un proveedor con nombre normalizado.
func (uc *ProveedorUseCase) Create(ctx context.Context, userID string, req dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	nombre := normalize.Nombre(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nombre:    nombre,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proveedores.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.log.Info().Str("proveedor_id", p.ID).Str("nombre", nombre).Msg("proveedor creado")
	resp := dto.ToProveedorResponse(p)
	return &resp, nil
}

// List proveedores del usuario ordenados por nombre.
func (uc *ProveedorUseCase) List(ctx context.Context, userID string) ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedores.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		resp = append(resp, dto.ToProveedorResponse(p))
	}
	return resp, nil
}

// Update renombra un proveedor.
func (uc *ProveedorUseCase) Update(ctx context.Context, id, userID string, req dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	nombre := normalize.Nombre(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}

	p, err := uc.proveedores.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.Nombre = nombre
	if err := uc.proveedores.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.ToProveedorResponse(p)
	return &resp, nil
}

// Delete elimina un proveedor solo si ningún gasto lo referencia.
func (uc *ProveedorUseCase) Delete(ctx context.Context, id, userID string) error {
	inUse, err := uc.proveedores.IsInUse(ctx, id, userID)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrProveedorEnUso
	}
	return uc.proveedores.Delete(ctx, id, userID)
}
