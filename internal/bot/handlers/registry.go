package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler is a command handler together with its match rules and middleware.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
	Description string
	AdminOnly   bool
}

// RegisterAllCommands returns every bot command keyed by its slash name.
// The chat handler is not part of the map; it is installed as the default handler.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	command := func(name, description string, h tgbot.HandlerFunc, mw ...tgbot.Middleware) {
		handlers["/"+name] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     name,
			Handler:     h,
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  mw,
			Description: description,
			AdminOnly:   len(mw) > 0,
		}
	}

	command("start", "Start a conversation with the bot", NewStartHandler(deps))
	command("help", "Show example questions", NewHelpHandler(deps))

	admin := AdminOnly(deps)
	command("stats", "Show intent hit counts (admin only)", NewStatsHandler(deps), admin)
	command("history", "Show recent exchanges in this chat (admin only)", NewHistoryHandler(deps), admin)
	command("reset", "Clear the exchange log (admin only)", NewResetHandler(deps), admin)

	return handlers
}
