package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/klimatech/acbot/internal/config"
	"github.com/klimatech/acbot/internal/handler"
	"github.com/klimatech/acbot/internal/middleware"
	"github.com/klimatech/acbot/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" || cfg.GeminiAPIKey == config.PlaceholderAPIKey {
		// The bot still starts: every request answers with the key-missing
		// notice instead of failing silently.
		slog.Warn("gemini api key missing or placeholder, diagnostics disabled")
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	gemini := service.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	diagnostics := service.NewDiagnosticsService(gemini, cfg.GeminiAPIKey)
	history := service.NewHistory()

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleMessage(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	h = handler.New(handler.Deps{
		Bot:         b,
		History:     history,
		Diagnostics: diagnostics,
	})
	h.Register()

	slog.Info("starting bot")
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
