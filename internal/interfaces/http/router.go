package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Suministros-api/internal/application/analytics"
	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/application/usecase"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	SolicitudUC *solicitud.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	ProductUC   *usecase.ProductUseCase
	UnitUC      *usecase.UnitUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret, deps.UserUC)

	// Usuarios: login público, el resto protegido
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/login", authHandler.Login)
	usuarios.Get("/perfil", authMW, userHandler.Profile)
	usuarios.Put("/color-perfil", authMW, userHandler.UpdateProfileColor)
	usuarios.Get("/usuarios", authMW, userHandler.List)
	usuarios.Get("/usuarios/:id", authMW, userHandler.GetByID)
	manageUsers := RequireCapability(access.ManageUsers)
	usuarios.Post("/registro", authMW, manageUsers, userHandler.Create)
	usuarios.Put("/usuarios/:id", authMW, manageUsers, userHandler.Update)
	usuarios.Delete("/usuarios/:id", authMW, manageUsers, userHandler.Delete)

	// Solicitudes (protegido). /usuario se registra antes que /:id.
	solicitudes := api.Group("/solicitudes", authMW)
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/", RequireCapability(access.ViewAllRequests), solicitudHandler.List)
	solicitudes.Get("/usuario", solicitudHandler.ListMine)
	solicitudes.Get("/:id", solicitudHandler.Get)
	solicitudes.Put("/:id", solicitudHandler.Update)
	solicitudes.Put("/:id/status", RequireCapability(access.ChangeStatus), solicitudHandler.ChangeStatus)
	solicitudes.Delete("/:id", solicitudHandler.Delete)
	solicitudes.Get("/:id/pdf", solicitudHandler.Voucher)

	// Entregas parciales (protegido)
	parciales := api.Group("/suministros-parciales", authMW)
	parcialHandler := NewParcialHandler(deps.SolicitudUC)
	parciales.Post("/:solicitudId", RequireCapability(access.RecordDelivery), parcialHandler.Create)
	parciales.Get("/:solicitudId", parcialHandler.List)
	parciales.Delete("/:id", RequireCapability(access.DeleteDelivery), parcialHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/usuario", authMW, dashboardHandler.GetUserDashboard)

	// Catálogos: lectura para cualquier usuario autenticado, escritura con catalogo:administrar
	manageCatalog := RequireCapability(access.ManageCatalog)

	productos := api.Group("/productos", authMW)
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Post("/", manageCatalog, productHandler.Create)
	productos.Put("/:id", manageCatalog, productHandler.Update)
	productos.Delete("/:id", manageCatalog, productHandler.Delete)

	unidades := api.Group("/unidades-medida", authMW)
	unitHandler := NewUnitHandler(deps.UnitUC)
	unidades.Get("/", unitHandler.List)
	unidades.Get("/:id", unitHandler.GetByID)
	unidades.Post("/", manageCatalog, unitHandler.Create)
	unidades.Put("/:id", manageCatalog, unitHandler.Update)
	unidades.Delete("/:id", manageCatalog, unitHandler.Delete)
}
