// Package handlers contains the Telegram command and message handlers of the
// delivery chatbot, along with their registration logic and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AdminOnly creates a middleware that lets only the configured admin through.
// Everyone else gets the "not authorized" message.
func AdminOnly(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			if !requireAdmin(ctx, b, deps, update) {
				return
			}
			next(ctx, b, update)
		}
	}
}

// requireAdmin reports whether the update comes from the admin and answers
// the sender otherwise. Updates without a message sender are rejected.
func requireAdmin(ctx context.Context, s Sender, deps HandlerDeps, update *models.Update) bool {
	if update.Message == nil || update.Message.From == nil {
		return false
	}

	userID := update.Message.From.ID
	if userID == deps.Config.Telegram.AdminUserID {
		return true
	}

	chatID := update.Message.Chat.ID
	deps.Logger.With("middleware", "AdminOnly").WarnContext(ctx, "Unauthorized access attempt", "user_id", userID, "chat_id", chatID)
	sendText(ctx, s, deps, chatID, deps.Config.Messages.Unauthorized)
	return false
}
