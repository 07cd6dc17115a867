// Package render turns raw model responses into display nodes: diagnostic
// section headings and paragraphs with bold runs resolved. It is a pure,
// deliberately tolerant formatter — malformed markup renders literally and
// never fails.
package render

import "strings"

// NodeKind discriminates rendered nodes.
type NodeKind int

const (
	KindParagraph NodeKind = iota
	KindHeading
)

// Span is one run of paragraph text.
type Span struct {
	Text string
	Bold bool
}

// Node is one rendered line of a response.
type Node struct {
	Kind  NodeKind
	Text  string // heading line, verbatim
	Spans []Span // paragraph content
}

// Render splits response text into nodes, one per line. A line containing
// any of the markers becomes a heading; every other line becomes a paragraph
// with **bold** runs resolved. Lines keep their received order.
func Render(text string, markers []string) []Node {
	lines := strings.Split(text, "\n")
	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		if isHeading(line, markers) {
			nodes = append(nodes, Node{Kind: KindHeading, Text: line})
			continue
		}
		nodes = append(nodes, Node{Kind: KindParagraph, Spans: boldSpans(line)})
	}
	return nodes
}

func isHeading(line string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// boldSpans splits a line on paired ** delimiters, stripping them from the
// emphasized runs. An unpaired ** stays in the text as-is.
func boldSpans(line string) []Span {
	var spans []Span
	rest := line
	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		length := strings.Index(rest[open+2:], "**")
		if length < 0 {
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		spans = append(spans, Span{Text: rest[open+2 : open+2+length], Bold: true})
		rest = rest[open+2+length+2:]
	}
	if rest != "" || len(spans) == 0 {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
