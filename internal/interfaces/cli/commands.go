// Package cli comandos de operación de dealerctl (migraciones e importación de catálogos).
package cli

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/dealership-api/internal/application/usecase"
	"github.com/jhoicas/dealership-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dealership-api/pkg/config"
	"github.com/jhoicas/dealership-api/pkg/logger"
)

// NewRootCommand construye dealerctl con sus subcomandos.
func NewRootCommand() *cobra.Command {
	var dbURL string
	root := &cobra.Command{
		Use:           "dealerctl",
		Short:         "Herramientas de operación de la API del concesionario",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbURL, "db", "", "Connection string de PostgreSQL (tiene prioridad sobre DATABASE_URL)")

	root.AddCommand(MigrateCommand(&dbURL), ImportPartsCommand(&dbURL))
	return root
}

// MigrateCommand aplica las migraciones embebidas pendientes.
func MigrateCommand(dbURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar migraciones SQL pendientes",
		Long: `Aplica en orden las migraciones embebidas en el binario que aún no figuran
en schema_migrations. Cada archivo corre en su propia transacción.

Ejemplo:
  dealerctl migrate --db postgres://postgres@localhost:5432/dealership?sslmode=disable`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			pool, log, err := connect(ctx, *dbURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones pendientes")
				return nil
			}
			log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
			for _, v := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "aplicada", v)
			}
			return nil
		},
	}
}

// ImportPartsCommand crea repuestos a partir del CSV de un proveedor.
func ImportPartsCommand(dbURL *string) *cobra.Command {
	var (
		file    string
		charset string
		sep     string
	)
	cmd := &cobra.Command{
		Use:   "import-parts",
		Short: "Importar un catálogo de repuestos (CSV)",
		Long: `Lee un CSV con cabecera (part_name, part_number, quantity_available,
reorder_level, unit_price y part_category obligatorias; location, supplier_name
y compatibility_info opcionales) y crea un repuesto por fila. El part_id lo
genera el servidor. Las filas inválidas, incompletas o duplicadas se informan
y se omiten.

Ejemplos:
  dealerctl import-parts --file catalogo.csv
  dealerctl import-parts --file catalogo.csv --charset iso-8859-1 --sep ';'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comma, size := utf8.DecodeRuneInString(sep)
			if size == 0 || size != len(sep) {
				return fmt.Errorf("--sep debe ser un único carácter")
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("abrir catálogo: %w", err)
			}
			defer f.Close()

			ctx := cmd.Context()
			pool, log, err := connect(ctx, *dbURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			parts := usecase.NewPartUseCase(postgres.NewPartRepository(pool), postgres.NewPartsOrderRepository(pool))
			report, err := ImportParts(ctx, parts, f, charset, comma)
			if report != nil {
				for _, skipped := range report.Skipped {
					fmt.Fprintln(cmd.ErrOrStderr(), "omitida:", skipped.Error())
				}
				log.Info().
					Str("file", file).
					Int("created", len(report.Created)).
					Int("skipped", len(report.Skipped)).
					Msg("importación de repuestos")
				fmt.Fprintf(cmd.OutOrStdout(), "creados: %d, omitidos: %d\n", len(report.Created), len(report.Skipped))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Ruta del CSV")
	cmd.Flags().StringVar(&charset, "charset", "utf-8", "Codificación del archivo (utf-8, iso-8859-1, windows-1252)")
	cmd.Flags().StringVar(&sep, "sep", ",", "Separador de columnas")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// connect carga la configuración, el logger y el pool. dbURL vacío usa DATABASE_URL / DB_*.
func connect(ctx context.Context, dbURL string) (*pgxpool.Pool, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if dbURL != "" {
		cfg.DB.DatabaseURL = dbURL
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name}).Component("dealerctl")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, log, nil
}
