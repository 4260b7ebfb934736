package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/domain/emissions"
)

func newPreviewCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "preview <archivo>",
		Short: "Muestra el resumen y las primeras filas válidas de un archivo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := load(args[0])
			if err != nil {
				return err
			}
			printPreview(cmd.OutOrStdout(), p, all)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "listar todos los registros, no solo la muestra")
	return cmd
}

// load abre el archivo y lo deja en vista previa.
func load(path string) (*ingest.Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := ingest.NewPipeline()
	if _, err := p.AcceptFile(path, f); err != nil {
		return nil, err
	}
	return p, nil
}

func printPreview(w io.Writer, p *ingest.Pipeline, all bool) {
	v := p.View()
	fmt.Fprintf(w, "Archivo:      %s\n", v.Filename)
	fmt.Fprintf(w, "Registros:    %d\n", v.Summary.Records)
	fmt.Fprintf(w, "Emisiones:    %s tCO2e\n", emissions.Format(v.Summary.TotalEmissions))
	fmt.Fprintf(w, "Proveedores:  %d\n", v.Summary.UniqueSuppliers)
	if v.Dropped > 0 {
		fmt.Fprintf(w, "Descartadas:  %d\n", v.Dropped)
	}
	fmt.Fprintln(w)

	rows, rest := v.Sample, v.Remainder
	if all {
		rows, rest = p.Records(), 0
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORÍA\tPROVEEDOR\tACTIVIDAD\tCANTIDAD\tUNIDAD\tEMISIONES")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Category, r.Supplier, r.Activity, r.Quantity.String(), r.Unit,
			emissions.Format(emissions.Round(r.TotalEmissions())))
	}
	tw.Flush()
	if rest > 0 {
		fmt.Fprintf(w, "... y %d registros más\n", rest)
	}
}
