package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deliverybot/internal/config"
	"github.com/edgard/deliverybot/internal/database"
	"github.com/edgard/deliverybot/internal/responder"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Store     database.Store
	Responder *responder.Responder
}

// Sender is the part of *bot.Bot the handlers use to talk back to a chat.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

var _ Sender = (*bot.Bot)(nil)

// adapt turns a Sender-based handler into a go-telegram handler.
func adapt(handle func(ctx context.Context, s Sender, update *models.Update)) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		handle(ctx, b, update)
	}
}

// sendText sends text to chatID and logs a failure.
func sendText(ctx context.Context, s Sender, deps HandlerDeps, chatID int64, text string) bool {
	_, err := s.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		deps.Logger.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
		return false
	}
	return true
}
