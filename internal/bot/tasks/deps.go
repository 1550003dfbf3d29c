// Package tasks implements the scheduled maintenance tasks of the delivery chatbot.
package tasks

import (
	"log/slog"
	"time"

	"github.com/edgard/deliverybot/internal/config"
	"github.com/edgard/deliverybot/internal/database"
)

// TaskDeps contains the dependencies shared by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
	// Now defaults to time.Now when nil.
	Now func() time.Time
}

func (d TaskDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
