package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
)

// GastoHandler maneja las peticiones de gastos operativos (protegido).
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

func parseGastoFilter(c *fiber.Ctx) dto.GastoFilterRequest {
	return dto.GastoFilterRequest{
		RangoFechas: dto.RangoFechas{
			Desde: c.Query("fecha_desde"),
			Hasta: c.Query("fecha_hasta"),
		},
		Categoria: c.Query("categoria"),
		Page:      c.QueryInt("page", 1),
		PerPage:   c.QueryInt("per_page", 20),
	}
}

// Create godoc
// @Summary      Registrar un gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGastoRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Param        categoria    query  string  false  "Filtrar por categoría"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        per_page     query  int     false  "Por página"  default(20)
// @Success      200  {object}  dto.Page[dto.GastoResponse]
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetEffectiveUserID(c), parseGastoFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar un gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.CreateGastoRequest  true  "Datos del gasto"
// @Success      200   {object}  dto.GastoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un gasto
// @Tags         gastos
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetEffectiveUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyReceipt godoc
// @Summary      Verificar propiedad de un comprobante
// @Tags         gastos
// @Security     Bearer
// @Param        filename  path  string  true  "Nombre del archivo del comprobante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/comprobantes/{filename} [get]
func (h *GastoHandler) VerifyReceipt(c *fiber.Ctx) error {
	if err := h.uc.VerifyReceipt(c.UserContext(), c.Params("filename"), GetEffectiveUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Total de gastos del período filtrado
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Param        categoria    query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.GastoSummaryResponse
// @Router       /api/gastos/summary [get]
func (h *GastoHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetEffectiveUserID(c), parseGastoFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
