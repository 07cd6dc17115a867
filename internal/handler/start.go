package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/klimatech/acbot/internal/domain"
)

// welcomeText greets the user when a conversation opens. The seeded turn is
// display-only: it never travels to the backend as history.
const welcomeText = "Здравствуйте! Я ваш виртуальный инженер по климатическому оборудованию.\n\n" +
	"Опишите проблему с вашим кондиционером, и я помогу провести диагностику.\n\n" +
	"Если есть возможность, сфотографируйте внутренний блок, шильдик или код ошибки на дисплее."

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.history.Reset(chatID)
	h.seedWelcome(chatID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   welcomeText,
	})
}

func (h *Handler) seedWelcome(chatID int64) {
	h.history.Append(chatID, domain.ChatTurn{
		ID:      domain.WelcomeTurnID,
		Speaker: domain.SpeakerAssistant,
		Text:    welcomeText,
	})
}
