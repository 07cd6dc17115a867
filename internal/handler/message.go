package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/klimatech/acbot/internal/config"
	"github.com/klimatech/acbot/internal/domain"
	"github.com/klimatech/acbot/internal/render"
	"github.com/klimatech/acbot/internal/service"
	tg "github.com/klimatech/acbot/internal/telegram"
)

const (
	msgBusy         = "⏳ Дождитесь ответа на предыдущий запрос."
	msgNotImage     = "⚠️ Можно прикрепить только изображение (фото блока, шильдика или дисплея)."
	msgPhotoFailed  = "⚠️ Не удалось загрузить фото. Попробуйте отправить его ещё раз."
	msgConnectivity = "⚠️ Произошла ошибка при соединении с сервером. Пожалуйста, проверьте интернет и попробуйте снова."
)

// HandleMessage processes a user fault description: text, photo, or both.
func (h *Handler) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || strings.HasPrefix(msg.Text, "/") {
		return
	}
	chatID := msg.Chat.ID

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	attachment, ok := h.extractAttachment(ctx, b, msg)
	if !ok {
		return
	}
	if text == "" && attachment == nil {
		return
	}

	if err := h.history.TryAcquire(chatID); err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   msgBusy,
		})
		return
	}
	defer h.history.Release(chatID)

	// The user turn is recorded first so the transcript stays in display
	// order even if the request below fails.
	prior := h.history.Turns(chatID)
	h.history.Append(chatID, domain.ChatTurn{
		Speaker:    domain.SpeakerUser,
		Text:       text,
		Attachment: attachment,
	})

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	answer, isErr := h.runDiagnosis(ctx, prior, text, attachment)
	h.history.Append(chatID, domain.ChatTurn{
		Speaker: domain.SpeakerAssistant,
		Text:    answer,
		IsError: isErr,
	})

	nodes := render.Render(answer, config.SectionMarkers)
	replyTo := msg.ID
	if err := tg.SendLongMessage(ctx, b, chatID, tg.FormatResponse(nodes), &replyTo); err != nil {
		slog.Error("send diagnosis", "error", err, "chat_id", chatID)
	}
}

// runDiagnosis shields the chat flow from anything escaping the
// orchestrator's own handling; the user always gets a turn back.
func (h *Handler) runDiagnosis(ctx context.Context, history []domain.ChatTurn, text string, attachment *domain.Attachment) (answer string, isErr bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("diagnosis panicked", "panic", r)
			answer = msgConnectivity
			isErr = true
		}
	}()
	return h.diagnostics.Diagnose(ctx, history, text, attachment), false
}

// extractAttachment pulls an image out of the message, if any. A non-image
// document is rejected with a validation reply and stops processing without
// touching any state.
func (h *Handler) extractAttachment(ctx context.Context, b *bot.Bot, msg *models.Message) (*domain.Attachment, bool) {
	chatID := msg.Chat.ID

	var fileID, declaredMime string
	switch {
	case len(msg.Photo) > 0:
		// Telegram orders photo sizes ascending; take the largest.
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	case msg.Document != nil:
		if !strings.HasPrefix(msg.Document.MimeType, "image/") {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   msgNotImage,
			})
			return nil, false
		}
		fileID = msg.Document.FileID
		declaredMime = msg.Document.MimeType
	default:
		return nil, true
	}

	data, contentType, err := tg.DownloadFile(ctx, b, fileID)
	if err != nil {
		slog.Error("download attachment", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   msgPhotoFailed,
		})
		return nil, false
	}
	if declaredMime == "" {
		declaredMime = contentType
	}

	attachment, err := service.EncodeImage(data, declaredMime)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   msgNotImage,
		})
		return nil, false
	}
	return attachment, true
}
