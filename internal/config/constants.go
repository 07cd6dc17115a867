package config

import "time"

const (
	// Per-attempt AI request timeout. A hung candidate times out and the
	// orchestrator advances to the next one.
	RequestTimeout = 60 * time.Second

	// Model catalog cache duration
	CatalogCacheDuration = 5 * time.Minute

	// Sampling temperature for diagnostic requests
	Temperature = 0.4

	// Placeholder from .env.example; treated the same as a missing key.
	PlaceholderAPIKey = "ВАШ_API_КЛЮЧ_ОТ_GOOGLE_GEMINI"
)

// SectionMarkers are the diagnostic section headers the model is instructed
// to emit. A response line containing one of them renders as a heading.
var SectionMarkers = []string{
	"🛠️ Возможные причины",
	"🔍 Что проверить",
	"✅ Рекомендуемые действия",
	"⚠️ Когда требуется вызов специалиста",
}
