package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/scope3-api/internal/infrastructure/submission"
	"github.com/jhoicas/scope3-api/pkg/config"
	"github.com/jhoicas/scope3-api/pkg/logger"
)

func newIngestCmd(newLog func(io.Writer) *logger.Logger) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "ingest <archivo>",
		Short: "Procesa el archivo y envía todos los registros válidos al destino configurado",
		Long: `Procesa el archivo igual que la carga por lotes de la API y envía el lote
completo. El destino se toma de SUBMISSION_SINK (log | postgres).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLog(cmd.ErrOrStderr())

			p, err := load(args[0])
			if err != nil {
				return err
			}
			printPreview(cmd.OutOrStdout(), p, false)

			sink, closeSink, err := submission.NewFromConfig(cmd.Context(), cfg, "cli", log.Component("submission"))
			if err != nil {
				return err
			}
			defer closeSink()

			notice, err := p.Confirm(cmd.Context(), owner, sink)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n", notice.Title, notice.Description)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "cli", "usuario al que se asocian los registros")
	return cmd
}
