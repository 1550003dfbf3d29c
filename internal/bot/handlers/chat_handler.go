package handlers

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/deliverybot/internal/database"
)

const (
	sendMessageTimeout = 10 * time.Second
	dbSaveTimeout      = 5 * time.Second
)

// NewChatHandler returns the default handler: it answers customer messages with
// the intent responder and records each exchange.
// In group chats it only answers when mentioned or replied to.
func NewChatHandler(deps HandlerDeps) bot.HandlerFunc {
	return adapt(chatHandler{deps}.Handle)
}

type chatHandler struct {
	deps HandlerDeps
}

func (h chatHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	log := h.deps.Logger.With("handler", "chat")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.DebugContext(ctx, "Ignoring update with nil message or sender", "update_id", update.ID)
		return
	}
	if msg.From.IsBot {
		return
	}

	chatID := msg.Chat.ID
	if !h.shouldHandle(msg) {
		log.DebugContext(ctx, "Bot not addressed in group chat, skipping", "chat_id", chatID)
		return
	}

	text := h.utterance(msg)
	match := h.deps.Responder.Match(text)
	log.InfoContext(ctx, "Matched customer message", "chat_id", chatID, "user_id", msg.From.ID, "intent", match.Intent)

	params := &bot.SendMessageParams{ChatID: chatID, Text: match.Reply}
	if msg.Chat.Type != models.ChatTypePrivate {
		params.ReplyParameters = &models.ReplyParameters{MessageID: msg.ID}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	_, err := s.SendMessage(sendCtx, params)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}

	exchange := &database.Exchange{
		ChatID: chatID,
		UserID: msg.From.ID,
		Input:  text,
		Intent: string(match.Intent),
		Reply:  match.Reply,
	}
	saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), dbSaveTimeout)
	defer cancelSave()
	if err := h.deps.Store.SaveExchange(saveCtx, exchange); err != nil {
		log.ErrorContext(ctx, "Failed to save exchange", "error", err, "chat_id", chatID)
	}
}

func (h chatHandler) shouldHandle(msg *models.Message) bool {
	if msg.Chat.Type == models.ChatTypePrivate {
		return true
	}

	info := h.deps.Config.Telegram.BotInfo
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil && msg.ReplyToMessage.From.ID == info.ID {
		return true
	}
	if info.Username == "" {
		return false
	}
	mention := "@" + strings.ToLower(info.Username)
	return strings.Contains(strings.ToLower(messageText(msg)), mention)
}

// utterance returns the message text with any mention of the bot removed, so the
// bot's own username never triggers a rule.
func (h chatHandler) utterance(msg *models.Message) string {
	text := messageText(msg)
	username := h.deps.Config.Telegram.BotInfo.Username
	if username == "" {
		return text
	}

	mention := regexp.MustCompile(`(?i)@` + regexp.QuoteMeta(username) + `\b`)
	return strings.TrimSpace(mention.ReplaceAllString(text, ""))
}

func messageText(msg *models.Message) string {
	switch {
	case msg.Text != "" && msg.Caption != "":
		return msg.Text + " " + msg.Caption
	case msg.Text != "":
		return msg.Text
	default:
		return msg.Caption
	}
}
