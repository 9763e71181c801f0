package cmd

import (
	placeSync "place-manager/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs one reconciliation pass against the configured database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize places with OpenStreetMap",
	Long: `Fetches the Overpass snapshot (or reuses the cached one), reconciles it against
the stored places and applies inserts, tag updates and soft-deletes in one transaction.

Examples:
  # Apply changes
  sync

  # Show what would change without writing
  sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Compute the plan without writing it")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := openPlaces(cfg)
	if err != nil {
		return err
	}

	svc, closeLock, err := newSyncService(cfg, db, l)
	if err != nil {
		return err
	}
	defer closeLock()

	report, err := svc.Run(cmd.Context(), placeSync.RunOptions{DryRun: dryRunSync})
	if err != nil {
		return err
	}

	printSyncReport(l, report)
	if report.DryRun {
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

// printSyncReport logs the plan summary and a sample of its actions.
func printSyncReport(l *zap.Logger, report *placeSync.Report) {
	s := report.Plan.Summary

	l.Info("Sync report",
		zap.String("run_id", report.RunID.String()),
		zap.Int("fresh", s.Fresh),
		zap.Int("cached", s.Cached),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("soft_deletes", s.SoftDeletes),
		zap.Int("revivals", s.Revivals),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("executed", report.Executed),
	)

	actions := report.Plan.Actions
	if len(actions) == 0 {
		return
	}

	maxShow := min(5, len(actions))
	for _, action := range actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.Int64("id", action.ID),
			zap.String("reason", action.Reason),
		)
	}
	if len(actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(actions)-maxShow))
	}
}
