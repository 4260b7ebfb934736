// scope3ctl herramienta de línea de comandos para la carga por lotes de emisiones:
// revisar un CSV, enviarlo al destino configurado y generar la plantilla.
//
// Uso:
//
//	scope3ctl preview datos.csv
//	scope3ctl ingest datos.csv --owner ana@acme.test
//	scope3ctl template --format xlsx -o plantilla.xlsx
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/scope3-api/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "scope3ctl",
		Short:         "Carga por lotes de emisiones de Alcance 3",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log detallado")

	// info por defecto: el destino de log escribe cada registro enviado a este nivel
	newLog := func(w io.Writer) *logger.Logger {
		level := "info"
		if verbose {
			level = "debug"
		}
		return logger.New(logger.Config{Env: "development", Level: level, App: "scope3ctl", Output: w})
	}

	root.AddCommand(newPreviewCmd())
	root.AddCommand(newIngestCmd(newLog))
	root.AddCommand(newTemplateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
