package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/infrastructure/excel"
)

var templateWriters = map[string]func(io.Writer) error{
	"csv":  ingest.WriteTemplateCSV,
	"xlsx": excel.WriteTemplate,
}

func newTemplateCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Genera la plantilla de carga (csv o xlsx)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			write, ok := templateWriters[format]
			if !ok {
				return fmt.Errorf("formato no soportado: %s (csv | xlsx)", format)
			}
			if output == "" || output == "-" {
				return write(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := write(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv | xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida; vacío o - escribe en stdout")
	return cmd
}
