// Package sync orchestrates one reconciliation run.
//
// A run takes the sync lock, fetches the raw snapshot, normalizes it, loads the
// persisted places, computes the plan and applies it in a single transaction. Every
// stage is strict: the first error ends the run and no partial state is written.
// Retrying is left to the next scheduled run.
//
// # Usage
//
//	svc := sync.NewService(fetcher, cache, places.NewRepository(db), locker, cfg.Sync, logger)
//	report, err := svc.Run(ctx, sync.RunOptions{DryRun: true})
package sync
