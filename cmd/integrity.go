package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"content-sync/core/config"
	"content-sync/core/logger"
	"content-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Verify the persisted snapshot",
	Long:  `Checks that every snapshot document exists and parses, and, when publishing is on, that the bucket holds every object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// snapshotCheckCmd represents the integrity snapshot command
var snapshotCheckCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Check the local snapshot documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// publishedCheckCmd represents the integrity published command
var publishedCheckCmd = &cobra.Command{
	Use:   "published",
	Short: "Check the published snapshot objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

var jsonFlag bool

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(snapshotCheckCmd, publishedCheckCmd)
	integrityCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Save the report as JSON")
}

func runIntegrityChecks(ctx context.Context, checkSnapshot, checkPublished bool) error {
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	svc := integrity.NewService(cfg.Snapshot.Dir, store, cfg.Storage.Bucket, cfg.Snapshot.Prefix, logg)
	report := make(map[string]any)
	healthy := true

	if checkSnapshot {
		files, err := svc.CheckSnapshot()
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}
		report["snapshot"] = files
		healthy = integrity.Healthy(files)

		fmt.Println("\n=== Snapshot Documents ===")
		for _, f := range files {
			fmt.Printf("%-10s present=%-5v valid=%-5v records=%d\n", f.Name, f.Present, f.Valid, f.Records)
		}
	}

	if checkPublished {
		objects, err := svc.CheckPublished(ctx)
		switch {
		case errors.Is(err, integrity.ErrPublishingDisabled):
			fmt.Println("\nPublishing is disabled (SNAPSHOT_PUBLISH=false)")
		case err != nil:
			return fmt.Errorf("published snapshot check failed: %w", err)
		default:
			report["published"] = objects
			fmt.Println("\n=== Published Objects ===")
			for _, o := range objects {
				fmt.Printf("%-10s present=%-5v size=%d\n", o.Name, o.Present, o.Size)
				if !o.Present {
					healthy = false
				}
			}
		}
	}

	if jsonFlag {
		filename := fmt.Sprintf("integrity_snapshot_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	executionTime := time.Since(startTime)
	fmt.Printf("\nExecution Time: %s\n", executionTime.String())
	logg.Info("Integrity check completed", zap.Bool("healthy", healthy), zap.Duration("execution_time", executionTime))

	if !healthy {
		return fmt.Errorf("snapshot is incomplete")
	}
	return nil
}
