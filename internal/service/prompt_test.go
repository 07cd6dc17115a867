package service

import (
	"strings"
	"testing"

	"github.com/klimatech/acbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTranscriptOrderAndLabels(t *testing.T) {
	history := []domain.ChatTurn{
		{ID: "1", Speaker: domain.SpeakerUser, Text: "кондиционер не холодит"},
		{ID: "2", Speaker: domain.SpeakerAssistant, Text: "уточните модель"},
	}

	got := BuildTranscript(history, "LG S12EQ")

	assert.True(t, strings.HasPrefix(got, "Ты — профессиональный инженер"))
	idxUser := strings.Index(got, "Пользователь: кондиционер не холодит")
	idxAssistant := strings.Index(got, "Модель: уточните модель")
	require.Positive(t, idxUser)
	require.Positive(t, idxAssistant)
	assert.Less(t, idxUser, idxAssistant, "history keeps append order")
	assert.True(t, strings.HasSuffix(got, "Пользователь: LG S12EQ"), "transcript ends with the new message")
}

func TestBuildTranscriptExcludesWelcomeTurn(t *testing.T) {
	history := []domain.ChatTurn{
		{ID: domain.WelcomeTurnID, Speaker: domain.SpeakerAssistant, Text: "Здравствуйте!"},
		{ID: "1", Speaker: domain.SpeakerUser, Text: "капает вода"},
	}

	got := BuildTranscript(history, "что делать?")

	assert.NotContains(t, got, "Здравствуйте!")
	assert.Contains(t, got, "Пользователь: капает вода")
}

func TestAssemblePartsTextOnly(t *testing.T) {
	parts := AssembleParts(nil, "не включается", nil)

	require.Len(t, parts, 1)
	assert.Nil(t, parts[0].InlineData)
	assert.Contains(t, parts[0].Text, "Пользователь: не включается")
}

func TestAssemblePartsImagePrecedesText(t *testing.T) {
	att := &domain.Attachment{MimeType: "image/png", Base64Data: "QUJD"}

	parts := AssembleParts(nil, "код ошибки на фото", att)

	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/png", parts[0].InlineData.MimeType)
	assert.Equal(t, "QUJD", parts[0].InlineData.Data)
	assert.Contains(t, parts[1].Text, "Пользователь: код ошибки на фото")
}
