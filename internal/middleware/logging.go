package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Logging returns middleware that logs update processing time.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			var chatID int64
			hasPhoto := false
			if update.Message != nil {
				chatID = update.Message.Chat.ID
				hasPhoto = len(update.Message.Photo) > 0
			}

			next(ctx, b, update)

			slog.Debug("update processed",
				"chat_id", chatID,
				"has_photo", hasPhoto,
				"duration", time.Since(start),
			)
		}
	}
}
