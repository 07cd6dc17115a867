package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShort(t *testing.T) {
	parts := SplitMessage("короткий ответ", 100)

	assert.Equal(t, []string{"короткий ответ"}, parts)
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	text := strings.Repeat("а", 60) + "\n" + strings.Repeat("б", 60)

	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("а", 60)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("б", 60), parts[1])
}

func TestSplitMessageReassembles(t *testing.T) {
	text := strings.Repeat("строка диагностики\n", 50)

	parts := SplitMessage(text, 80)

	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 80)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}
