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

const historyInputPreview = 60

// NewHistoryHandler returns a handler for the /history command, which shows the
// latest exchanges of the current chat, oldest first.
func NewHistoryHandler(deps HandlerDeps) bot.HandlerFunc {
	return adapt(historyHandler{deps}.Handle)
}

type historyHandler struct {
	deps HandlerDeps
}

func (h historyHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", "history")
	if update.Message == nil || update.Message.From == nil {
		log.ErrorContext(ctx, "History handler called with nil Message or From", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	queryCtx, cancel := context.WithTimeout(ctx, dbQueryTimeout)
	defer cancel()

	exchanges, err := h.deps.Store.GetRecentExchanges(queryCtx, chatID, h.deps.Config.Database.HistoryLimit)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load exchange history", "error", err, "chat_id", chatID)
		sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.GeneralError)
		return
	}
	if len(exchanges) == 0 {
		sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.NoHistory)
		return
	}

	sendText(ctx, s, h.deps, chatID, formatHistory(exchanges, h.deps.Config.Location()))
}

func formatHistory(exchanges []database.Exchange, loc *time.Location) string {
	var b strings.Builder
	for i := len(exchanges) - 1; i >= 0; i-- {
		ex := exchanges[i]
		input := []rune(ex.Input)
		if len(input) > historyInputPreview {
			input = append(input[:historyInputPreview-3], []rune("...")...)
		}
		fmt.Fprintf(&b, "[%s] %s: %q\n", ex.CreatedAt.In(loc).Format("2006-01-02 15:04"), ex.Intent, string(input))
	}
	return strings.TrimRight(b.String(), "\n")
}
