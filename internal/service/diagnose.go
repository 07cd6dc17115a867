package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/klimatech/acbot/internal/config"
	"github.com/klimatech/acbot/internal/domain"
)

// Backend is the narrow slice of the Gemini API the orchestrator needs,
// so it can be exercised against a fake in tests.
type Backend interface {
	GenerateContent(ctx context.Context, model string, parts []Part, temperature float64) (string, error)
	ListModels(ctx context.Context) ([]domain.CatalogModel, error)
}

// User-facing outcomes of the fallback chain. These are answers, not errors:
// the orchestrator always hands its caller something renderable.
const (
	MsgKeyMissing = "⚠️ Ошибка: API-ключ не найден. Пожалуйста, проверьте ключ в файле .env."
	MsgExhausted  = "❌ Не удалось подобрать доступную модель Gemini для этого ключа/региона. Попробуйте позже или проверьте доступ к моделям в Google AI Studio."
)

// DiagnosticsService turns a conversation plus optional photo into a
// diagnostic answer. Model availability varies by key and region and
// identifiers get renamed without notice, so a single hardcoded model is
// brittle; instead candidates are tried in tiers until one answers.
type DiagnosticsService struct {
	backend   Backend
	apiKey    string
	primary   config.ModelCandidates
	secondary config.ModelCandidates
}

func NewDiagnosticsService(backend Backend, apiKey string) *DiagnosticsService {
	return &DiagnosticsService{
		backend:   backend,
		apiKey:    apiKey,
		primary:   config.PrimaryModels,
		secondary: config.FallbackModels,
	}
}

// Diagnose runs the tiered fallback and always returns renderable text.
// Tiers execute strictly in sequence; the first non-empty answer wins.
func (s *DiagnosticsService) Diagnose(ctx context.Context, history []domain.ChatTurn, message string, attachment *domain.Attachment) string {
	if s.apiKey == "" || s.apiKey == config.PlaceholderAPIKey {
		return MsgKeyMissing
	}

	parts := AssembleParts(history, message, attachment)
	hasImage := attachment != nil
	tried := s.primary.For(hasImage)

	var lastErr error

	// Tier 1: primary candidates in listed order.
	for _, model := range tried {
		text, err := s.attempt(ctx, model, parts)
		if err != nil {
			lastErr = err
			continue
		}
		return text
	}

	// Tier 2: first catalog model that can generate content and was not
	// already tried. Catalog trouble is skipped silently.
	if text, ok := s.tryDiscovered(ctx, parts, tried); ok {
		return text
	}

	// Tier 3: secondary static list, overlapping Tier 1 on purpose — a
	// transient failure there may have cleared by now.
	for _, model := range s.secondary.For(hasImage) {
		text, err := s.attempt(ctx, model, parts)
		if err != nil {
			lastErr = err
			continue
		}
		return text
	}

	slog.Error("all model candidates failed", "error", lastErr)
	return MsgExhausted
}

func (s *DiagnosticsService) attempt(ctx context.Context, model string, parts []Part) (string, error) {
	text, err := s.backend.GenerateContent(ctx, model, parts, config.Temperature)
	if err != nil {
		slog.Debug("model attempt failed", "model", model, "error", err)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

func (s *DiagnosticsService) tryDiscovered(ctx context.Context, parts []Part, tried []string) (string, bool) {
	models, err := s.backend.ListModels(ctx)
	if err != nil {
		slog.Warn("model catalog lookup failed", "error", err)
		return "", false
	}

	for _, m := range models {
		if !m.SupportsGeneration() {
			continue
		}
		// Only the first qualifying model gets an attempt, and only if the
		// static tier has not tried it already.
		id := m.ID()
		if id == "" || slices.Contains(tried, id) {
			return "", false
		}
		text, err := s.attempt(ctx, id, parts)
		if err != nil {
			return "", false
		}
		return text, true
	}
	return "", false
}
