package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docuexpress/docuexpress-api/internal/application/analytics"
	"github.com/docuexpress/docuexpress-api/internal/application/auth"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	PapeleriaUC *usecase.PapeleriaUseCase
	TramiteUC   *usecase.TramiteUseCase
	PrecioUC    *usecase.PrecioUseCase
	ProveedorUC *usecase.ProveedorUseCase
	GastoUC     *usecase.GastoUseCase
	BuscarUC    *usecase.BuscarUseCase
	SummaryUC   *analytics.SummaryUseCase
	DashboardUC *analytics.DashboardUseCase
	AvanzadoUC  *analytics.AvanzadoUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Gestión de usuarios e impersonación (solo admin)
	admin := protected.Group("/users", RequireAdmin())
	admin.Get("/", authHandler.ListUsers)
	admin.Put("/:id", authHandler.UpdateUser)
	admin.Delete("/:id", authHandler.DeleteUser)

	// Papelerías y su configuración de precios
	papeleriaHandler := NewPapeleriaHandler(deps.PapeleriaUC, deps.PrecioUC)
	papelerias := protected.Group("/papelerias")
	papelerias.Post("/", papeleriaHandler.Create)
	papelerias.Get("/", papeleriaHandler.List)
	papelerias.Get("/nombres", papeleriaHandler.Nombres)
	papelerias.Put("/:id", papeleriaHandler.Update)
	papelerias.Delete("/:id", papeleriaHandler.Delete)
	papelerias.Get("/:id/precios", papeleriaHandler.GetPreciosConfig)
	papelerias.Post("/:id/precios", papeleriaHandler.SetPrecios)

	// Trámites, costos por defecto y autocompletado
	tramiteHandler := NewTramiteHandler(deps.TramiteUC, deps.PrecioUC)
	papelerias.Get("/:id/tramites", tramiteHandler.ListByPapeleria)
	tramites := protected.Group("/tramites")
	tramites.Post("/", tramiteHandler.Create)
	tramites.Get("/totales", tramiteHandler.Totals)
	tramites.Get("/nombres", tramiteHandler.Nombres)
	tramites.Get("/precio-costo", tramiteHandler.GetPrecioCosto)
	tramites.Get("/costos", tramiteHandler.GetCostos)
	tramites.Post("/costos", tramiteHandler.SetCosto)
	tramites.Post("/costos/backfill", tramiteHandler.Backfill)
	tramites.Put("/:id", tramiteHandler.Update)
	tramites.Delete("/:id", tramiteHandler.Delete)

	// Proveedores
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores := protected.Group("/proveedores")
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Gastos
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos := protected.Group("/gastos")
	gastos.Post("/", gastoHandler.Create)
	gastos.Get("/", gastoHandler.List)
	gastos.Get("/summary", gastoHandler.Summary)
	gastos.Get("/comprobantes/:filename", gastoHandler.VerifyReceipt)
	gastos.Put("/:id", gastoHandler.Update)
	gastos.Delete("/:id", gastoHandler.Delete)

	// Analytics y búsqueda
	analyticsHandler := NewAnalyticsHandler(deps.SummaryUC, deps.DashboardUC, deps.AvanzadoUC, deps.BuscarUC)
	analyticsGroup := protected.Group("/analytics")
	analyticsGroup.Get("/resumen-mensual", analyticsHandler.ResumenMensual)
	analyticsGroup.Get("/dashboard-charts", analyticsHandler.DashboardCharts)
	analyticsGroup.Get("/papeleria-charts/:id", analyticsHandler.PapeleriaCharts)
	analyticsGroup.Get("/avanzado", analyticsHandler.Avanzado)
	protected.Get("/buscar", analyticsHandler.Buscar)
}
