package tasks

import (
	"context"
	"fmt"
	"time"
)

const retentionTimeout = 2 * time.Minute

// newExchangeRetentionTask creates the task that deletes exchanges older than
// the configured retention. A retention of zero days keeps everything.
func newExchangeRetentionTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "exchange_retention")

	return func(ctx context.Context) error {
		days := deps.Config.Database.RetentionDays
		if days <= 0 {
			log.DebugContext(ctx, "Exchange retention disabled, skipping")
			return nil
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, retentionTimeout)
		defer cancel()

		cutoff := deps.now().AddDate(0, 0, -days)
		deleted, err := deps.Store.DeleteExchangesBefore(timeoutCtx, cutoff)
		if err != nil {
			log.ErrorContext(ctx, "Exchange retention failed", "error", err, "cutoff", cutoff)
			return fmt.Errorf("exchange retention failed: %w", err)
		}

		log.InfoContext(ctx, "Exchange retention completed", "deleted", deleted, "retention_days", days)
		return nil
	}
}
