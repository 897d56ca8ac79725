// Package cli implementa repuestosctl: generación y validación de EAN-13, render
// de códigos y consulta de stock desde la terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-repuestos/pkg/config"
	"github.com/jhoicas/Inventario-repuestos/pkg/logger"
)

// RootOptions flags globales.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// openSource abre la fuente de movimientos para stock; se reemplaza en pruebas.
	openSource func(ctx context.Context) (inventory.StockSource, func(), error)
}

// ValidFormats formatos de salida admitidos.
var ValidFormats = []string{"text", "json"}

// NewRootCommand crea el comando raíz de repuestosctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{openSource: openPostgresSource})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repuestosctl",
		Short: "repuestosctl - inventario de repuestos",
		Long:  "Herramienta de línea de comandos para códigos EAN-13/QR y consulta de stock de repuestos.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("formato %q inválido: debe ser uno de %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "salida detallada en stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (json|text)")

	cmd.AddCommand(NewEANCommand(opts))
	cmd.AddCommand(NewQRCommand(opts))
	cmd.AddCommand(NewStockCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// logger con --verbose escribe en stderr; sin él descarta todo.
func (o *RootOptions) logger(cmd *cobra.Command) *logger.Logger {
	if !o.Verbose {
		return logger.Nop()
	}
	return logger.New(logger.Config{Env: "development", Level: "debug", Output: cmd.ErrOrStderr()})
}

// openPostgresSource usa la misma configuración que la API (DATABASE_URL, DB_HOST, ...).
func openPostgresSource(ctx context.Context) (inventory.StockSource, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DB.Driver != "postgres" {
		return nil, nil, fmt.Errorf("stock requiere DB_DRIVER=postgres (actual %q)", cfg.DB.Driver)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewStockSource(pool), pool.Close, nil
}

// writeFile escribe el archivo de salida; "-" escribe en stdout.
func writeFile(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
