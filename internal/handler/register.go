package handler

import "github.com/go-telegram/bot"

// Register registers all command handlers on the bot instance.
// Non-command messages are routed to HandleMessage via the default handler.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypePrefix, h.handleReset)
}
