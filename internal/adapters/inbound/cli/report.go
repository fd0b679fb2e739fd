package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/config"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/store"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/submit"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/tui"
	"github.com/edgecheck/edgecheck/internal/application"
	"github.com/edgecheck/edgecheck/internal/domain"
	"github.com/edgecheck/edgecheck/internal/endpoint"
)

func newReportCmd() *cobra.Command {
	var (
		dataPath   string
		reportPath string
		external   bool
		workspace  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect metrics about schema errors in a data set",
		Long:  "Run an integration report against the currently loaded schemas. Every sample file under the data path is replayed through the submission endpoint and aggregated into one report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(workspace)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("external") {
				cfg.External = external
			}
			if dataPath != "" {
				cfg.DataPath = dataPath
			}

			client, err := buildClient(cfg)
			if err != nil {
				return err
			}

			svc := application.NewReportService(client, store.New(), tui.NewProgress(cmd.OutOrStdout()))
			report, err := svc.Run(cfg.DataPath, reportPath)
			if err != nil {
				return err
			}

			if reportPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Writing report to %s\n", reportPath)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data-path", "", "Path to the sampled data tree (default from config)")
	cmd.Flags().StringVar(&reportPath, "report-path", "", "File to persist the report to (skipped when empty)")
	cmd.Flags().BoolVar(&external, "external", false, "Submit to a remote endpoint instead of the in-process harness")
	cmd.Flags().StringVar(&workspace, "workspace", ".", "Workspace directory holding .edgecheck.yaml")

	return cmd
}

func loadConfig(workspace string) (domain.Config, error) {
	cfg, err := config.New().Load(workspace)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildClient selects the client variant once per run. The harness variant
// loads a fresh schema registry, so repeated construction is safe.
func buildClient(cfg domain.Config) (domain.SubmissionClient, error) {
	if cfg.External {
		return submit.NewRemote(cfg.Host, cfg.Port), nil
	}
	app, err := endpoint.Load(cfg.ResourcesPath)
	if err != nil {
		return nil, err
	}
	return submit.NewHarness(app), nil
}
