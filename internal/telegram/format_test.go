package telegram

import (
	"testing"

	"github.com/klimatech/acbot/internal/config"
	"github.com/klimatech/acbot/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestFormatResponse(t *testing.T) {
	nodes := render.Render(
		"🛠️ Возможные причины\nзабит **фильтр** внутреннего блока",
		config.SectionMarkers,
	)

	got := FormatResponse(nodes)

	assert.Equal(t, "*🛠️ Возможные причины*\nзабит *фильтр* внутреннего блока", got)
}

func TestFormatResponsePlainLines(t *testing.T) {
	nodes := render.Render("первая строка\n\nвторая строка", nil)

	got := FormatResponse(nodes)

	assert.Equal(t, "первая строка\n\nвторая строка", got)
}
