package cmd

import (
	"fmt"

	"content-sync/core/config"
	"content-sync/core/logger"
	"content-sync/feature/content/models"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one content sync",
	Long:  `Fetches every content category, transforms it and rewrites the snapshot files. Nothing is written if any fetch fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		p, err := newPipeline(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		result, err := p.syncer.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Built: %d products, %d tours, %d donations, %d posts\n",
			result.Counts[models.CategoryProducts],
			result.Counts[models.CategoryTours],
			result.Counts[models.CategoryDonations],
			result.Counts[models.CategoryPosts])
		fmt.Printf("Run ID: %s\n", result.RunID)
		fmt.Printf("Execution Time: %dms\n", result.DurationMs)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
