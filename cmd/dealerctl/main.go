// dealerctl tareas de operación: migraciones y carga de catálogos de repuestos.
//
// Uso:
//
//	go run ./cmd/dealerctl migrate
//	go run ./cmd/dealerctl import-parts --file catalogo.csv --charset iso-8859-1
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/dealership-api/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
