package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/store"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/syncer"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/tui"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/vcs"
	"github.com/edgecheck/edgecheck/internal/application"
	"github.com/edgecheck/edgecheck/internal/domain"
)

func newCompareCmd() *cobra.Command {
	var (
		dataPath   string
		reportPath string
		cache      bool
		workspace  string
	)

	cmd := &cobra.Command{
		Use:   "compare REV_A REV_B",
		Short: "Compare schema errors across two revisions",
		Long:  "Check out two revisions of the schema repository, produce (or reuse cached) report snapshots for each, and diff their per-doctype error rates. The revision checked out before the run is restored afterwards.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			revA, revB := args[0], args[1]

			cfg, err := loadConfig(workspace)
			if err != nil {
				return err
			}
			if dataPath != "" {
				cfg.DataPath = dataPath
			}
			if reportPath != "" {
				cfg.ReportPath = reportPath
			}
			if cmd.Flags().Changed("cache") {
				cfg.Cache = cache
			}

			factory := func() (domain.SubmissionClient, error) {
				return buildClient(cfg)
			}
			svc := application.NewCompareService(
				factory,
				vcs.New(cfg.SchemaRepoPath),
				syncer.New(workspace, cfg.SyncScript, cmd.OutOrStdout()),
				store.New(),
				tui.NewProgress(cmd.OutOrStdout()),
			)

			result, err := svc.Compare(cfg, revA, revB)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiff(result.Diff))
			fmt.Fprintf(cmd.OutOrStdout(), "Writing diff to %s\n", result.DiffPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data-path", "", "Path to the sampled data tree (default from config)")
	cmd.Flags().StringVar(&reportPath, "report-path", "", "Directory for report snapshots and diffs (default from config)")
	cmd.Flags().BoolVar(&cache, "cache", true, "Reuse existing report snapshots")
	cmd.Flags().StringVar(&workspace, "workspace", ".", "Workspace directory holding .edgecheck.yaml")

	return cmd
}
