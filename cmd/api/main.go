package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/dealership-api/internal/application/procurement"
	"github.com/jhoicas/dealership-api/internal/application/usecase"
	"github.com/jhoicas/dealership-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dealership-api/internal/interfaces/http"
	"github.com/jhoicas/dealership-api/pkg/config"
	"github.com/jhoicas/dealership-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}

	partRepo := postgres.NewPartRepository(pool)
	partsOrderRepo := postgres.NewPartsOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	deps := httpRouter.RouterDeps{
		Accounting:          usecase.NewAccountingUseCase(postgres.NewAccountingRepository(pool)),
		Audits:              usecase.NewAuditUseCase(postgres.NewAuditRepository(pool)),
		Communications:      usecase.NewCommunicationUseCase(postgres.NewCommunicationRepository(pool)),
		Compliance:          usecase.NewComplianceUseCase(postgres.NewComplianceRepository(pool)),
		CustomerEngagements: usecase.NewCustomerEngagementUseCase(postgres.NewCustomerEngagementRepository(pool)),
		CustomerService:     usecase.NewCustomerServiceUseCase(postgres.NewCustomerServiceRepository(pool)),
		SalesOrders:         usecase.NewSalesOrderUseCase(postgres.NewSalesOrderRepository(pool)),
		Parts:               usecase.NewPartUseCase(partRepo, partsOrderRepo),
		PartsOrders:         procurement.NewUseCase(partsOrderRepo, partRepo, txRunner, log.Component("procurement")),
		RepairOrders:        usecase.NewRepairOrderUseCase(postgres.NewRepairOrderRepository(pool)),
		ServiceHistory:      usecase.NewServiceRecordUseCase(postgres.NewServiceRecordRepository(pool)),
		Scheduling:          usecase.NewAppointmentUseCase(postgres.NewAppointmentRepository(pool)),
		StockInventory:      usecase.NewVehicleUseCase(postgres.NewVehicleRepository(pool)),
		DB:                  pool,
		Log:                 log.Component("http"),
		JWT:                 cfg.JWT,
		Pagination:          cfg.Pagination,
	}
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: las rutas /api no exigen token")
	}

	app := httpRouter.NewApp(cfg, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
