package cli

import (
	"github.com/spf13/cobra"
)

// NewQRCommand escribe un código QR en PNG.
func NewQRCommand(rootOpts *RootOptions) *cobra.Command {
	r := renderOptions{}
	cmd := &cobra.Command{
		Use:           "qr <text>",
		Short:         "Escribir la imagen PNG de un código QR",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			if err := r.validate(f, true); err != nil {
				return err
			}
			uc := newBarcodeUseCase(cmd, rootOpts, r.settings(""))
			png, err := uc.RenderQR(args[0])
			if err != nil {
				return fail(f, err)
			}
			if err := writeFile(cmd, r.output, png); err != nil {
				return WrapExitError(ExitCommandError, "escribir "+r.output, err)
			}
			f.VerboseLog("%d bytes escritos en %s", len(png), r.output)
			if r.output == "-" {
				return nil
			}
			return f.Success(map[string]any{"file": r.output, "bytes": len(png)}, r.output)
		},
	}
	cmd.Flags().IntVar(&r.qrSize, "size", 256, "lado en px (mín. 177)")
	cmd.Flags().StringVarP(&r.output, "output", "o", "qrcode.png", "archivo destino (- = stdout)")
	return cmd
}
