package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/render"
)

// renderOptions tamaño de las imágenes generadas.
type renderOptions struct {
	width  int
	height int
	qrSize int
	output string
}

func (r renderOptions) settings(prefix string) barcodes.Settings {
	return barcodes.Settings{Prefix: prefix, Width: r.width, Height: r.height, QRSize: r.qrSize}
}

// validate aplica los mínimos de módulos de EAN-13 (95) y QR versión 40 (177).
func (r renderOptions) validate(f *OutputFormatter, qr bool) error {
	switch {
	case qr && r.qrSize < 177:
		return fail(f, fmt.Errorf("%w: --size mínimo 177", domain.ErrInvalidInput))
	case !qr && (r.width < 95 || r.height <= 0):
		return fail(f, fmt.Errorf("%w: --width mínimo 95 y --height positivo", domain.ErrInvalidInput))
	}
	return nil
}

func newBarcodeUseCase(cmd *cobra.Command, opts *RootOptions, s barcodes.Settings) *barcodes.UseCase {
	return barcodes.NewUseCase(nil, render.NewBarcodeRenderer(), pdf.NewMarotoPDFGenerator(), s, opts.logger(cmd))
}

// NewEANCommand agrupa las operaciones sobre EAN-13.
func NewEANCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ean",
		Short: "Generar, validar y renderizar códigos EAN-13",
	}
	cmd.AddCommand(newEANGenerateCommand(rootOpts))
	cmd.AddCommand(newEANValidateCommand(rootOpts))
	cmd.AddCommand(newEANCheckDigitCommand(rootOpts))
	cmd.AddCommand(newEANPNGCommand(rootOpts))
	cmd.AddCommand(newEANLabelsCommand(rootOpts))
	return cmd
}

func newEANGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var prefix string
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generar códigos EAN-13 aleatorios con el prefijo dado",
		Long: `Completa el prefijo con dígitos aleatorios hasta 12 y agrega el dígito verificador.
Un prefijo con 12 o más dígitos, o con caracteres no numéricos, se rechaza.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			uc := newBarcodeUseCase(cmd, rootOpts, barcodes.Settings{Prefix: barcode.DefaultPrefix})
			out, err := uc.Generate(prefix, count)
			if err != nil {
				return fail(f, err)
			}
			f.VerboseLog("%d código(s) con prefijo %q", len(out.Codes), prefix)
			return f.Success(out, out.Codes...)
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", barcode.DefaultPrefix, "prefijo numérico (máx. 11 dígitos)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, fmt.Sprintf("cantidad de códigos (máx. %d)", barcodes.MaxGenerateCount))
	return cmd
}

func newEANValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <code>",
		Short:         "Validar un EAN-13 (sale con 1 si el verificador no coincide)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			uc := newBarcodeUseCase(cmd, rootOpts, barcodes.Settings{})
			out, err := uc.Validate(args[0])
			if err != nil {
				return fail(f, err)
			}
			if !out.Valid {
				_ = f.Success(out, fmt.Sprintf("✗ %s inválido", out.Code))
				return NewExitError(ExitFailure, "dígito verificador incorrecto")
			}
			return f.Success(out, fmt.Sprintf("✓ %s válido", out.Code))
		},
	}
}

func newEANCheckDigitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "check-digit <payload>",
		Short:         "Calcular el dígito verificador de 12 dígitos",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			uc := newBarcodeUseCase(cmd, rootOpts, barcodes.Settings{})
			out, err := uc.CheckDigit(args[0])
			if err != nil {
				return fail(f, err)
			}
			return f.Success(out, fmt.Sprintf("%d", out.CheckDigit), out.Code)
		},
	}
}

func newEANPNGCommand(rootOpts *RootOptions) *cobra.Command {
	r := renderOptions{}
	cmd := &cobra.Command{
		Use:           "png <code>",
		Short:         "Escribir la imagen PNG de un EAN-13",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			if err := r.validate(f, false); err != nil {
				return err
			}
			uc := newBarcodeUseCase(cmd, rootOpts, r.settings(""))
			png, err := uc.RenderEAN13(args[0])
			if err != nil {
				return fail(f, err)
			}
			path := r.output
			if path == "" {
				path = "ean13-" + args[0] + ".png"
			}
			if err := writeFile(cmd, path, png); err != nil {
				return WrapExitError(ExitCommandError, "escribir "+path, err)
			}
			f.VerboseLog("%d bytes escritos en %s", len(png), path)
			if path == "-" {
				return nil
			}
			return f.Success(map[string]any{"file": path, "bytes": len(png)}, path)
		},
	}
	cmd.Flags().IntVar(&r.width, "width", 380, "ancho en px (mín. 95)")
	cmd.Flags().IntVar(&r.height, "height", 150, "alto en px")
	cmd.Flags().StringVarP(&r.output, "output", "o", "", "archivo destino (- = stdout; por defecto ean13-<code>.png)")
	return cmd
}

func newEANLabelsCommand(rootOpts *RootOptions) *cobra.Command {
	var title, output string
	cmd := &cobra.Command{
		Use:           "labels <code>...",
		Short:         "Generar una hoja PDF de etiquetas EAN-13",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			uc := newBarcodeUseCase(cmd, rootOpts, barcodes.Settings{})
			doc, err := uc.LabelSheet(cmd.Context(), dto.LabelSheetRequest{Title: title, Codes: args})
			if err != nil {
				return fail(f, err)
			}
			if err := writeFile(cmd, output, doc); err != nil {
				return WrapExitError(ExitCommandError, "escribir "+output, err)
			}
			if output == "-" {
				return nil
			}
			return f.Success(map[string]any{"file": output, "labels": len(args)}, output)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "título de la hoja")
	cmd.Flags().StringVarP(&output, "output", "o", "etiquetas-ean13.pdf", "archivo destino (- = stdout)")
	return cmd
}

// fail informa el error y lo convierte en ExitCommandError.
func fail(f *OutputFormatter, err error) error {
	code := errorCode(err)
	_ = f.Error(code, err.Error())
	return WrapExitError(ExitCommandError, code, err)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPrefix):
		return "INVALID_PREFIX"
	case errors.Is(err, domain.ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	case errors.Is(err, domain.ErrInvalidLength):
		return "INVALID_LENGTH"
	case errors.Is(err, domain.ErrInvalidDigits):
		return "INVALID_DIGITS"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrFetchFailed):
		return "FETCH_FAILED"
	default:
		return "INTERNAL"
	}
}
