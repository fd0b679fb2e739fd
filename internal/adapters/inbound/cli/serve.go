package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/edgecheck/edgecheck/internal/endpoint"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		workspace string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ingestion endpoint over HTTP",
		Long:  "Serve the schema-validating submission endpoint so external clients (EXTERNAL report runs on another host, manual curl checks) can reach it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(workspace)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = fmt.Sprintf(":%d", cfg.Port)
			}

			app, err := endpoint.Load(cfg.ResourcesPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s\n", addr)
			return http.ListenAndServe(addr, app)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to :<port> from config)")
	cmd.Flags().StringVar(&workspace, "workspace", ".", "Workspace directory holding .edgecheck.yaml")

	return cmd
}
