package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/deliverybot/internal/bot/tasks"
	"github.com/edgard/deliverybot/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noopTask(context.Context) error { return nil }

func TestSchedulerStartSkipsMisconfiguredTasks(t *testing.T) {
	t.Parallel()

	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"nightly":  {Enabled: true, Schedule: "0 0 3 * * *"},
		"disabled": {Enabled: false, Schedule: "0 0 3 * * *"},
		"unknown":  {Enabled: true, Schedule: "0 0 3 * * *"},
		"empty":    {Enabled: true},
		"invalid":  {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"nightly":  noopTask,
		"disabled": noopTask,
		"empty":    noopTask,
		"invalid":  noopTask,
	}

	s, err := NewScheduler(discardLogger(), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	assert.Equal(t, []string{"nightly"}, s.JobNames())
	assert.Error(t, s.Start(), "second Start must fail")
}

func TestSchedulerRunsTaskAndStops(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{}, 1)
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"every_second": {Enabled: true, Schedule: "* * * * * *"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"every_second": func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return ctx.Err()
		},
	}

	s, err := NewScheduler(discardLogger(), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not run within 5s")
	}

	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop(), "stopping a stopped scheduler is a no-op")
}

func TestSchedulerWithoutTasks(t *testing.T) {
	t.Parallel()

	s, err := NewScheduler(nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	assert.Empty(t, s.JobNames())
	require.NoError(t, s.Stop())
}
