package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
)

// PapeleriaHandler maneja las peticiones de papelerías y su configuración de
// precios (protegido).
type PapeleriaHandler struct {
	uc      *usecase.PapeleriaUseCase
	precios *usecase.PrecioUseCase
}

func NewPapeleriaHandler(uc *usecase.PapeleriaUseCase, precios *usecase.PrecioUseCase) *PapeleriaHandler {
	return &PapeleriaHandler{uc: uc, precios: precios}
}

// Create godoc
// @Summary      Dar de alta una papelería
// @Tags         papelerias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePapeleriaRequest  true  "Nombre de la papelería"
// @Success      201   {object}  dto.PapeleriaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/papelerias [post]
func (h *PapeleriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePapeleriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	status := fiber.StatusCreated
	if out.Reactivada {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(out)
}

// List godoc
// @Summary      Listar papelerías con totales
// @Tags         papelerias
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por nombre"
// @Success      200  {array}  dto.PapeleriaStatsResponse
// @Router       /api/papelerias [get]
func (h *PapeleriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetEffectiveUserID(c), c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Nombres godoc
// @Summary      Listado ligero de papelerías (id y nombre)
// @Tags         papelerias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PapeleriaResponse
// @Router       /api/papelerias/nombres [get]
func (h *PapeleriaHandler) Nombres(c *fiber.Ctx) error {
	out, err := h.uc.Nombres(c.UserContext(), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar papelería
// @Tags         papelerias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la papelería"
// @Param        body  body  dto.UpdatePapeleriaRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.PapeleriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/papelerias/{id} [put]
func (h *PapeleriaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePapeleriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Rename(c.UserContext(), c.Params("id"), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar papelería (baja lógica)
// @Tags         papelerias
// @Security     Bearer
// @Param        id  path  string  true  "ID de la papelería"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/papelerias/{id} [delete]
func (h *PapeleriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetEffectiveUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPreciosConfig godoc
// @Summary      Configuración de precios de una papelería
// @Tags         papelerias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la papelería"
// @Success      200  {array}  dto.PrecioConfigRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/papelerias/{id}/precios [get]
func (h *PapeleriaHandler) GetPreciosConfig(c *fiber.Ctx) error {
	out, err := h.precios.GetConfig(c.UserContext(), c.Params("id"), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SetPrecios godoc
// @Summary      Guardar precios de una papelería (todo o nada)
// @Tags         papelerias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la papelería"
// @Param        body  body  dto.SetPreciosRequest  true  "Precios por trámite (texto crudo)"
// @Success      200   {object}  dto.SetPreciosResponse
// @Failure      400   {object}  dto.SetPreciosResponse  "Errores de validación, uno por trámite"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/papelerias/{id}/precios [post]
func (h *PapeleriaHandler) SetPrecios(c *fiber.Ctx) error {
	var in dto.SetPreciosRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.precios.SetPrecios(c.UserContext(), c.Params("id"), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	if len(out.Errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.JSON(out)
}
