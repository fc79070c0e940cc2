package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
	"github.com/docuexpress/docuexpress-api/internal/domain"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// TramiteHandler maneja cobros de trámites, costos por defecto y el
// autocompletado de captura (protegido).
type TramiteHandler struct {
	uc      *usecase.TramiteUseCase
	precios *usecase.PrecioUseCase
}

func NewTramiteHandler(uc *usecase.TramiteUseCase, precios *usecase.PrecioUseCase) *TramiteHandler {
	return &TramiteHandler{uc: uc, precios: precios}
}

func parseRango(c *fiber.Ctx) (*repository.Rango, error) {
	rf := dto.RangoFechas{Desde: c.Query("fecha_desde"), Hasta: c.Query("fecha_hasta")}
	return rf.Bounds()
}

// Create godoc
// @Summary      Registrar cobros de un trámite
// @Tags         tramites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddTramitesRequest  true  "Cobro a registrar (cantidad de clientes incluida)"
// @Success      201   {array}  dto.TramiteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tramites [post]
func (h *TramiteHandler) Create(c *fiber.Ctx) error {
	var in dto.AddTramitesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetEffectiveUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByPapeleria godoc
// @Summary      Listar cobros de una papelería
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "ID de la papelería"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        per_page     query  int     false  "Por página"  default(20)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/papelerias/{id}/tramites [get]
func (h *TramiteHandler) ListByPapeleria(c *fiber.Ctx) error {
	rango, err := parseRango(c)
	if err != nil {
		return fail(c, domain.ErrInvalidInput)
	}
	page, totales, err := h.uc.ListByPapeleria(
		c.UserContext(), c.Params("id"), GetEffectiveUserID(c),
		rango, c.QueryInt("page", 1), c.QueryInt("per_page", 20),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tramites": page, "totales": totales})
}

// Update godoc
// @Summary      Editar un cobro
// @Tags         tramites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cobro"
// @Param        body  body  dto.UpdateTramiteRequest  true  "Datos del cobro"
// @Success      200   {object}  dto.TramiteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tramites/{id} [put]
func (h *TramiteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTramiteRequest
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
// @Summary      Eliminar un cobro
// @Tags         tramites
// @Security     Bearer
// @Param        id  path  string  true  "ID del cobro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tramites/{id} [delete]
func (h *TramiteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetEffectiveUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Totals godoc
// @Summary      Totales generales de cobros
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Success      200  {object}  dto.TotalesResponse
// @Router       /api/tramites/totales [get]
func (h *TramiteHandler) Totals(c *fiber.Ctx) error {
	rango, err := parseRango(c)
	if err != nil {
		return fail(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.TotalsGeneral(c.UserContext(), GetEffectiveUserID(c), rango)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Nombres godoc
// @Summary      Catálogo de trámites (predefinidos + registrados)
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/tramites/nombres [get]
func (h *TramiteHandler) Nombres(c *fiber.Ctx) error {
	out, err := h.uc.Nombres(c.UserContext(), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetPrecioCosto godoc
// @Summary      Autocompletar precio y costo al capturar un cobro
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Param        papeleria_id  query  string  true  "ID de la papelería"
// @Param        tramite       query  string  true  "Nombre del trámite"
// @Success      200  {object}  dto.PrecioCostoResponse
// @Router       /api/tramites/precio-costo [get]
func (h *TramiteHandler) GetPrecioCosto(c *fiber.Ctx) error {
	out, err := h.precios.GetPrecioCosto(
		c.UserContext(), c.Query("papeleria_id"), c.Query("tramite"), GetEffectiveUserID(c),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SetCosto godoc
// @Summary      Guardar costo por defecto de un trámite
// @Tags         tramites
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tramites/costos [post]
func (h *TramiteHandler) SetCosto(c *fiber.Ctx) error {
	var in dto.SetCostoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.precios.SetCosto(c.UserContext(), GetEffectiveUserID(c), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCostos godoc
// @Summary      Costos por defecto del usuario
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]number
// @Router       /api/tramites/costos [get]
func (h *TramiteHandler) GetCostos(c *fiber.Ctx) error {
	out, err := h.precios.GetCostos(c.UserContext(), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Backfill godoc
// @Summary      Retrocargar costos por defecto en cobros con costo cero
// @Tags         tramites
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackfillResponse
// @Router       /api/tramites/costos/backfill [post]
func (h *TramiteHandler) Backfill(c *fiber.Ctx) error {
	out, err := h.precios.Backfill(c.UserContext(), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
