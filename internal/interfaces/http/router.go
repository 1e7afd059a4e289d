package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/application/procurement"
	"github.com/jhoicas/dealership-api/internal/application/stats"
	"github.com/jhoicas/dealership-api/internal/application/usecase"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/pkg/config"
	"github.com/jhoicas/dealership-api/pkg/logger"
)

// Pinger comprueba la conexión a la base de datos (lo implementa *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Accounting          *usecase.AccountingUseCase
	Audits              *usecase.AuditUseCase
	Communications      *usecase.CommunicationUseCase
	Compliance          *usecase.ComplianceUseCase
	CustomerEngagements *usecase.CustomerEngagementUseCase
	CustomerService     *usecase.CustomerServiceUseCase
	SalesOrders         *usecase.SalesOrderUseCase
	Parts               *usecase.PartUseCase
	PartsOrders         *procurement.UseCase
	RepairOrders        *usecase.RepairOrderUseCase
	ServiceHistory      *usecase.ServiceRecordUseCase
	Scheduling          *usecase.AppointmentUseCase
	StockInventory      *usecase.VehicleUseCase

	DB         Pinger
	Log        *logger.Logger
	JWT        config.JWTConfig
	Pagination config.PaginationConfig
}

// NewApp crea la aplicación Fiber con el middleware común y todas las rutas.
func NewApp(cfg *config.Config, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.HTTP.CORSOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Dealership API",
		}))
	}

	app.Get("/health", health(cfg.App.Name, deps.DB))

	Router(app, deps)
	return app
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con JWT_SECRET vacío las rutas son públicas y DELETE no exige rol.
	var del []fiber.Handler
	if deps.JWT.Enabled() {
		api.Use(AuthMiddleware(deps.JWT.Secret))
		del = append(del, RequireRole(RoleAdmin, RoleManager))
	}
	pages := deps.Pagination

	NewRecordHandler[entity.Accounting, entity.Accounting, entity.AccountingPatch](deps.Accounting, ResourceOptions[entity.Accounting]{
		Name:    "movimiento contable",
		Filters: []string{"transaction_type", "status", "account_name"},
		Stats:   Stats(stats.Accounting),
	}, pages).Register(api.Group("/accounting"), del...)

	NewRecordHandler[entity.Audit, entity.Audit, entity.AuditPatch](deps.Audits, ResourceOptions[entity.Audit]{
		Name:    "auditoría",
		Filters: []string{"audit_type", "department", "status", "risk_level"},
		Stats:   Stats(stats.Audits),
	}, pages).Register(api.Group("/audits"), del...)

	NewRecordHandler[entity.Communication, entity.Communication, entity.CommunicationPatch](deps.Communications, ResourceOptions[entity.Communication]{
		Name:    "comunicación",
		Filters: []string{"customer_id", "communication_type", "direction", "status"},
		Stats:   Stats(stats.Communications),
	}, pages).Register(api.Group("/communications"), del...)

	NewRecordHandler[entity.Compliance, entity.Compliance, entity.CompliancePatch](deps.Compliance, ResourceOptions[entity.Compliance]{
		Name:    "registro de cumplimiento",
		Filters: []string{"compliance_type", "department", "status", "risk_level"},
		Stats:   Stats(stats.Compliance),
	}, pages).Register(api.Group("/compliance"), del...)

	NewRecordHandler[entity.CustomerEngagement, entity.CustomerEngagement, entity.CustomerEngagementPatch](deps.CustomerEngagements, ResourceOptions[entity.CustomerEngagement]{
		Name:    "interacción",
		Filters: []string{"customer_id", "engagement_type", "channel", "outcome"},
		Stats:   Stats(stats.Engagements),
	}, pages).Register(api.Group("/customer-engagements"), del...)

	NewRecordHandler[entity.CustomerServiceTicket, entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch](deps.CustomerService, ResourceOptions[entity.CustomerServiceTicket]{
		Name:    "ticket",
		Filters: []string{"customer_id", "issue_type", "priority", "status"},
		Stats:   Stats(stats.CustomerService),
	}, pages).Register(api.Group("/customer-service"), del...)

	NewRecordHandler[entity.SalesOrder, entity.SalesOrder, entity.SalesOrderPatch](deps.SalesOrders, ResourceOptions[entity.SalesOrder]{
		Name:    "orden de venta",
		Filters: []string{"customer_id", "order_status", "payment_status", "order_type"},
		Stats:   Stats(stats.SalesOrders),
	}, pages).Register(api.Group("/orders"), del...)

	NewRecordHandler[entity.Part, dto.CreatePartRequest, entity.PartPatch](deps.Parts, ResourceOptions[entity.Part]{
		Name:    "repuesto",
		Filters: []string{"part_category", "supplier_name", "location"},
		Stats:   Stats(stats.Parts),
	}, pages).Register(api.Group("/parts-inventory"), del...)

	NewPartsOrderHandler(deps.PartsOrders, pages).Register(api.Group("/parts-orders"), del...)

	NewRecordHandler[entity.RepairOrder, entity.RepairOrder, entity.RepairOrderPatch](deps.RepairOrders, ResourceOptions[entity.RepairOrder]{
		Name:    "orden de reparación",
		Filters: []string{"customer_id", "vehicle_vin", "status", "priority", "technician"},
		Stats:   Stats(stats.RepairOrders),
	}, pages).Register(api.Group("/repair-orders"), del...)

	NewRecordHandler[entity.ServiceRecord, entity.ServiceRecord, entity.ServiceRecordPatch](deps.ServiceHistory, ResourceOptions[entity.ServiceRecord]{
		Name:    "servicio",
		Filters: []string{"customer_id", "vehicle_vin", "service_type", "technician"},
		Stats:   Stats(stats.ServiceHistory),
	}, pages).Register(api.Group("/service-history"), del...)

	NewRecordHandler[entity.Appointment, entity.Appointment, entity.AppointmentPatch](deps.Scheduling, ResourceOptions[entity.Appointment]{
		Name:    "cita",
		Filters: []string{"customer_id", "status", "service_type", "technician"},
		Stats:   Stats(stats.Scheduling),
	}, pages).Register(api.Group("/service-scheduling"), del...)

	NewRecordHandler[entity.Vehicle, entity.Vehicle, entity.VehiclePatch](deps.StockInventory, ResourceOptions[entity.Vehicle]{
		Name:    "vehículo",
		Filters: []string{"make", "model", "condition", "status", "location"},
		Stats:   Stats(stats.StockInventory),
	}, pages).Register(api.Group("/stock-inventory"), del...)
}

func health(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable", "service": service, "error": err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}

// allowedOrigins normaliza la lista de orígenes CORS ("a, b" -> "a,b").
func allowedOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
