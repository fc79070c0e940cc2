package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

// GastoUseCase registro y consulta de gastos operativos.
type GastoUseCase struct {
	gastos      repository.GastoRepository
	proveedores repository.ProveedorRepository
	log         *logger.Logger
}

func NewGastoUseCase(gastos repository.GastoRepository, proveedores repository.ProveedorRepository, log *logger.Logger) *GastoUseCase {
	return &GastoUseCase{gastos: gastos, proveedores: proveedores, log: log}
}

func (uc *GastoUseCase) validar(ctx context.Context, userID string, req dto.CreateGastoRequest) (fecha time.Time, err error) {
	if req.Descripcion == "" {
		return time.Time{}, fmt.Errorf("%w: descripción requerida", domain.ErrInvalidInput)
	}
	if req.Monto.IsNegative() {
		return time.Time{}, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
	}
	if req.Categoria == "" {
		return time.Time{}, fmt.Errorf("%w: categoría requerida", domain.ErrInvalidInput)
	}

	p, err := uc.proveedores.GetByID(ctx, req.ProveedorID, userID)
	if err != nil {
		return time.Time{}, err
	}
	if p == nil {
		return time.Time{}, fmt.Errorf("%w: proveedor no encontrado", domain.ErrNotFound)
	}

	fecha = time.Now().UTC().Truncate(24 * time.Hour)
	if req.Fecha != "" {
		f, err := dto.ParseFecha(req.Fecha)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fecha = f
	}
	return fecha, nil
}

// Create registra un gasto.
func (uc *GastoUseCase) Create(ctx context.Context, userID string, req dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	fecha, err := uc.validar(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	g := &entity.Gasto{
		ID:              uuid.New().String(),
		UserID:          userID,
		ProveedorID:     req.ProveedorID,
		Descripcion:     req.Descripcion,
		Monto:           req.Monto,
		Fecha:           fecha,
		Categoria:       req.Categoria,
		ReceiptFilename: req.ReceiptFilename,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.gastos.Create(ctx, g); err != nil {
		return nil, err
	}

	uc.log.Info().Str("gasto_id", g.ID).Str("categoria", g.Categoria).Msg("gasto registrado")
	resp := dto.ToGastoResponse(repository.GastoConProveedor{Gasto: *g})
	return &resp, nil
}

// Update edita un gasto existente.
func (uc *GastoUseCase) Update(ctx context.Context, id, userID string, req dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	existente, err := uc.gastos.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}

	fecha, err := uc.validar(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	existente.ProveedorID = req.ProveedorID
	existente.Descripcion = req.Descripcion
	existente.Monto = req.Monto
	existente.Fecha = fecha
	existente.Categoria = req.Categoria
	if req.ReceiptFilename != "" {
		existente.ReceiptFilename = req.ReceiptFilename
	}
	if err := uc.gastos.Update(ctx, existente); err != nil {
		return nil, err
	}

	resp := dto.ToGastoResponse(repository.GastoConProveedor{Gasto: *existente})
	return &resp, nil
}

// Delete elimina un gasto.
func (uc *GastoUseCase) Delete(ctx context.Context, id, userID string) error {
	return uc.gastos.Delete(ctx, id, userID)
}

// List pagina los gastos con filtros de fecha y categoría.
func (uc *GastoUseCase) List(ctx context.Context, userID string, req dto.GastoFilterRequest) (dto.Page[dto.GastoResponse], error) {
	rango, err := req.Bounds()
	if err != nil {
		return dto.Page[dto.GastoResponse]{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	filter := repository.GastoFilter{Rango: rango, Categoria: req.Categoria}
	items, total, err := uc.gastos.List(ctx, userID, filter, page, perPage)
	if err != nil {
		return dto.Page[dto.GastoResponse]{}, err
	}

	resp := make([]dto.GastoResponse, 0, len(items))
	for _, g := range items {
		resp = append(resp, dto.ToGastoResponse(g))
	}
	return dto.NewPage(resp, total, page, perPage), nil
}

// VerifyReceipt confirma que el comprobante pertenece a un gasto del usuario.
// Lo consulta el servidor de estáticos antes de servir el archivo.
func (uc *GastoUseCase) VerifyReceipt(ctx context.Context, filename, userID string) error {
	if filename == "" {
		return fmt.Errorf("%w: comprobante requerido", domain.ErrInvalidInput)
	}
	ok, err := uc.gastos.ReceiptBelongsToUser(ctx, filename, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: comprobante no encontrado", domain.ErrNotFound)
	}
	return nil
}

// Summary total de gastos bajo los mismos filtros del listado.
func (uc *GastoUseCase) Summary(ctx context.Context, userID string, req dto.GastoFilterRequest) (*dto.GastoSummaryResponse, error) {
	rango, err := req.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	total, err := uc.gastos.Summary(ctx, userID, repository.GastoFilter{Rango: rango, Categoria: req.Categoria})
	if err != nil {
		return nil, err
	}
	return &dto.GastoSummaryResponse{Total: dto.Money(total)}, nil
}
