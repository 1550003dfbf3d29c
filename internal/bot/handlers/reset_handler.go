package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const resetTimeout = 30 * time.Second

// NewResetHandler returns a handler for the /reset command, which clears the exchange log.
func NewResetHandler(deps HandlerDeps) bot.HandlerFunc {
	return adapt(resetHandler{deps}.Handle)
}

type resetHandler struct {
	deps HandlerDeps
}

func (h resetHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", "reset")
	if update.Message == nil || update.Message.From == nil {
		log.ErrorContext(ctx, "Reset handler called with nil Message or From", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested exchange log reset", "chat_id", chatID, "user_id", update.Message.From.ID)

	timeoutCtx, cancel := context.WithTimeout(ctx, resetTimeout)
	defer cancel()

	count, err := h.deps.Store.DeleteAllExchanges(timeoutCtx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to reset exchange log", "error", err, "chat_id", chatID)
		sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.GeneralError)
		return
	}

	log.InfoContext(ctx, "Exchange log cleared", "chat_id", chatID, "deleted", count)
	sendText(ctx, s, h.deps, chatID, h.deps.Config.Messages.ResetDone)
}
