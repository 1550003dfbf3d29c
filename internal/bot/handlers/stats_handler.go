package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deliverybot/internal/database"
)

const dbQueryTimeout = 10 * time.Second

// NewStatsHandler returns a handler for the /stats command, which lists how
// often each intent answered a customer.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return adapt(statsHandler{deps}.Handle)
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")
	if update.Message == nil || update.Message.From == nil {
		log.ErrorContext(ctx, "Stats handler called with nil Message or From", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	queryCtx, cancel := context.WithTimeout(ctx, dbQueryTimeout)
	defer cancel()

	stats, err := h.deps.Store.GetIntentStats(queryCtx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load intent stats", "error", err)
		sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.GeneralError)
		return
	}
	if len(stats) == 0 {
		sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.NoStats)
		return
	}

	sendText(ctx, s, h.deps, chatID, formatStats(h.deps.Config.Messages.StatsHeader, stats))
}

func formatStats(header string, stats []database.IntentStat) string {
	var total int64
	for _, st := range stats {
		total += st.Hits
	}

	var b strings.Builder
	b.WriteString(header)
	for _, st := range stats {
		fmt.Fprintf(&b, "%s: %d (%.0f%%)\n", st.Intent, st.Hits, float64(st.Hits)*100/float64(total))
	}
	fmt.Fprintf(&b, "\nTotal: %d", total)
	return b.String()
}
