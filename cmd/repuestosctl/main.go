package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-repuestos/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Los subcomandos ya informaron el error en el formato elegido.
		if _, ok := err.(*cli.ExitError); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
