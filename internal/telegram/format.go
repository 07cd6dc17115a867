package telegram

import (
	"strings"

	"github.com/klimatech/acbot/internal/render"
)

// FormatResponse serializes rendered nodes into Telegram Markdown text.
// Section headings and bold runs use single-asterisk emphasis; the sender
// falls back to plain text if Telegram rejects the markup.
func FormatResponse(nodes []render.Node) string {
	var b strings.Builder
	for i, node := range nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch node.Kind {
		case render.KindHeading:
			b.WriteString("*")
			b.WriteString(node.Text)
			b.WriteString("*")
		default:
			for _, span := range node.Spans {
				if span.Bold {
					b.WriteString("*")
					b.WriteString(span.Text)
					b.WriteString("*")
					continue
				}
				b.WriteString(span.Text)
			}
		}
	}
	return b.String()
}
