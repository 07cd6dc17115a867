package handler

import (
	"github.com/go-telegram/bot"
	"github.com/klimatech/acbot/internal/service"
)

// Handler holds all dependencies needed by command and message handlers.
type Handler struct {
	bot         *bot.Bot
	history     *service.History
	diagnostics *service.DiagnosticsService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	History     *service.History
	Diagnostics *service.DiagnosticsService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		history:     deps.History,
		diagnostics: deps.Diagnostics,
	}
}
