package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

// NewStockCommand consulta el stock derivado de entradas y salidas.
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	var match string
	var all bool
	cmd := &cobra.Command{
		Use:   "stock [part-number]",
		Short: "Stock = Σ entradas − Σ salidas",
		Long: `Sin argumentos calcula el stock global. Con un número de parte suma los movimientos
que coinciden (--match contains|exact). Con --all lista el stock por número de parte.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			mode, err := domaininv.ParseMatchMode(match)
			if err != nil {
				return fail(f, err)
			}

			source, closeSource, err := rootOpts.openSource(cmd.Context())
			if err != nil {
				_ = f.Error("BACKEND", err.Error())
				return WrapExitError(ExitCommandError, "abrir backend", err)
			}
			defer closeSource()
			uc := inventory.NewStockUseCase(source, rootOpts.logger(cmd))

			switch {
			case all:
				out, err := uc.ListStockByPart(cmd.Context())
				if err != nil {
					return fail(f, err)
				}
				lines := make([]string, 0, len(out.Items))
				for _, s := range out.Items {
					lines = append(lines, stockLine(s))
				}
				return f.Success(out, lines...)
			case len(args) == 1:
				out, err := uc.ComputeStock(cmd.Context(), args[0], mode)
				if err != nil {
					return fail(f, err)
				}
				return f.Success(out, stockLine(*out))
			default:
				out, err := uc.ComputeTotalStock(cmd.Context())
				if err != nil {
					return fail(f, err)
				}
				out.PartNumber = "(total)"
				return f.Success(out, stockLine(*out))
			}
		},
	}
	cmd.Flags().StringVar(&match, "match", string(domaininv.MatchContains), "coincidencia del número de parte (contains|exact)")
	cmd.Flags().BoolVar(&all, "all", false, "listar el stock de cada número de parte")
	return cmd
}

func stockLine(s dto.StockSummaryResponse) string {
	line := fmt.Sprintf("%s\t%s\t(entradas %s, salidas %s)", s.PartNumber, s.Stock, s.TotalEntries, s.TotalExits)
	if s.UnparsedQuantities > 0 {
		line += fmt.Sprintf("\t%d cantidad(es) ilegibles", s.UnparsedQuantities)
	}
	return line
}
