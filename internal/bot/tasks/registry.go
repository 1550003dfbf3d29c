package tasks

import (
	"context"

	"github.com/edgard/deliverybot/internal/config"
)

// ScheduledTaskFunc is the signature of every scheduled task.
// Tasks must respect ctx cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns every task keyed by the name used in the scheduler config.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		config.TaskSQLMaintenance:    newSQLMaintenanceTask(deps),
		config.TaskExchangeRetention: newExchangeRetentionTask(deps),
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
