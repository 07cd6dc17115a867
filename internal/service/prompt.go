package service

import (
	"strings"

	"github.com/klimatech/acbot/internal/domain"
)

// systemInstruction defines the diagnostic persona and the mandatory answer
// format. It is prepended to every transcript sent to the backend.
const systemInstruction = `
Ты — профессиональный инженер по обслуживанию и ремонту бытовых и полупромышленных кондиционеров (сплит-систем, мульти-сплит, VRF).
Твоя задача — провести пошаговую диагностику неисправности кондиционера на основе предоставленных данных.

Алгоритм работы:
1. Проанализируй симптомы и условия работы.
2. Определи наиболее вероятные причины неисправности (от простых к сложным).
3. Укажи, какие проверки нужно выполнить (визуальные, электрические, холодильного контура).
4. Предложи конкретные решения и рекомендации по ремонту.
5. Если данных недостаточно — задай точные уточняющие вопросы.

Учитывай при анализе:
- Тип кондиционера (инверторный / обычный)
- Модель и мощность
- Симптомы
- Условия эксплуатации
- Коды ошибок

Формат твоего ответа должен СТРОГО содержать эти секции (используй эти эмодзи):

🛠️ Возможные причины
[Список причин]

🔍 Что проверить
[Список проверок]

✅ Рекомендуемые действия
[Шаги по устранению]

⚠️ Когда требуется вызов специалиста
[Предупреждения]

Важно:
- Не предлагай опасные действия для пользователя без профессиональных навыков (например, работа под высоким напряжением без допуска).
- Делай выводы логично и технически обоснованно.
- Используй простой, понятный язык.
- Если пользователь присылает фото, проанализируй его на предмет загрязнений, повреждений, кодов ошибок на дисплее или шильдике.
`

const (
	labelUser      = "Пользователь"
	labelAssistant = "Модель"
)

func speakerLabel(s domain.Speaker) string {
	switch s {
	case domain.SpeakerAssistant:
		return labelAssistant
	default:
		return labelUser
	}
}

// BuildTranscript flattens the system instruction, prior turns and the new
// message into the single text blob sent to the model. The welcome turn is a
// UI seed and never counts as conversation history. History is passed through
// unbounded; nothing is ever dropped or truncated.
func BuildTranscript(history []domain.ChatTurn, newMessage string) string {
	blocks := make([]string, 0, len(history)+2)
	blocks = append(blocks, strings.TrimSpace(systemInstruction))
	for _, turn := range history {
		if turn.IsWelcome() {
			continue
		}
		blocks = append(blocks, speakerLabel(turn.Speaker)+": "+turn.Text)
	}
	blocks = append(blocks, labelUser+": "+newMessage)
	return strings.Join(blocks, "\n\n")
}

// AssembleParts builds the ordered request parts. When an image is attached
// its inline-data part precedes the single text part.
func AssembleParts(history []domain.ChatTurn, newMessage string, attachment *domain.Attachment) []Part {
	var parts []Part
	if attachment != nil {
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: attachment.MimeType,
			Data:     attachment.Base64Data,
		}})
	}
	parts = append(parts, Part{Text: BuildTranscript(history, newMessage)})
	return parts
}
