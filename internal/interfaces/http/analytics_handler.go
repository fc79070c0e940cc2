package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/application/analytics"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
	"github.com/docuexpress/docuexpress-api/internal/domain"
)

// AnalyticsHandler maneja los reportes financieros y la búsqueda global
// (protegido).
type AnalyticsHandler struct {
	summary   *analytics.SummaryUseCase
	dashboard *analytics.DashboardUseCase
	avanzado  *analytics.AvanzadoUseCase
	buscar    *usecase.BuscarUseCase
}

func NewAnalyticsHandler(
	summary *analytics.SummaryUseCase,
	dashboard *analytics.DashboardUseCase,
	avanzado *analytics.AvanzadoUseCase,
	buscar *usecase.BuscarUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		summary:   summary,
		dashboard: dashboard,
		avanzado:  avanzado,
		buscar:    buscar,
	}
}

// ResumenMensual godoc
// @Summary      Resumen financiero mensual
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta); sin rango: últimos 12 meses"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Success      200  {object}  dto.ResumenMensualResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/resumen-mensual [get]
func (h *AnalyticsHandler) ResumenMensual(c *fiber.Ctx) error {
	rango, err := parseRango(c)
	if err != nil {
		return fail(c, domain.ErrInvalidInput)
	}
	out, err := h.summary.ResumenMensual(c.UserContext(), GetEffectiveUserID(c), rango)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DashboardCharts godoc
// @Summary      Gráficas del dashboard general
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD (requiere fecha_hasta)"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (requiere fecha_desde)"
// @Success      200  {object}  dto.DashboardChartsResponse
// @Router       /api/analytics/dashboard-charts [get]
func (h *AnalyticsHandler) DashboardCharts(c *fiber.Ctx) error {
	rango, err := parseRango(c)
	if err != nil {
		return fail(c, domain.ErrInvalidInput)
	}
	out, err := h.dashboard.Charts(c.UserContext(), GetEffectiveUserID(c), rango)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// PapeleriaCharts godoc
// @Summary      Gráficas del detalle de una papelería
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la papelería"
// @Success      200  {object}  dto.PapeleriaChartsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/papeleria-charts/{id} [get]
func (h *AnalyticsHandler) PapeleriaCharts(c *fiber.Ctx) error {
	out, err := h.dashboard.ChartsPapeleria(c.UserContext(), c.Params("id"), GetEffectiveUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Avanzado godoc
// @Summary      Panel de indicadores avanzados
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        meta  query  number  false  "Meta mensual de ganancia"  default(10000)
// @Success      200  {object}  dto.AnalyticsAvanzadoResponse
// @Router       /api/analytics/avanzado [get]
func (h *AnalyticsHandler) Avanzado(c *fiber.Ctx) error {
	meta := decimal.NewFromFloat(c.QueryFloat("meta", 0))
	out, err := h.avanzado.Avanzado(c.UserContext(), GetEffectiveUserID(c), meta)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Búsqueda global
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Término de búsqueda"
// @Success      200  {object}  dto.BuscarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/buscar [get]
func (h *AnalyticsHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.buscar.Buscar(c.UserContext(), GetEffectiveUserID(c), c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
