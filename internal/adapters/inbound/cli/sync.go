package cli

import (
	"github.com/spf13/cobra"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/syncer"
)

func newSyncCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize remote resources",
		Long:  "Run the configured sync script to update the resource folder with schemas and sampled data from remote sources. The script owns all download mechanics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(workspace)
			if err != nil {
				return err
			}
			return syncer.New(workspace, cfg.SyncScript, cmd.OutOrStdout()).Sync()
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "Workspace directory holding .edgecheck.yaml")

	return cmd
}
