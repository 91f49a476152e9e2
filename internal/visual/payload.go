// Package visual turns raw model output into the HTML/Markdown/segments
// payload the client renders. Pure text transformation, no shared state.
package visual

import (
	"html"
	"strings"
)

const (
	SegmentParagraph = "paragraph"
	SegmentError     = "error"
)

type Segment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Payload struct {
	HTML     string    `json:"html"`
	Markdown string    `json:"markdown"`
	Segments []Segment `json:"segments"`
}

// Build formats text into paragraphs. Blank-line separation wins when
// present; otherwise every line is its own paragraph. Paragraph HTML is
// entity-escaped with interior newlines rendered as <br>.
func Build(text string) Payload {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var pieces []string
	if strings.Contains(text, "\n\n") {
		pieces = strings.Split(text, "\n\n")
	} else {
		pieces = strings.Split(text, "\n")
	}

	paragraphs := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	htmlParts := make([]string, 0, len(paragraphs))
	segments := make([]Segment, 0, len(paragraphs))
	for _, p := range paragraphs {
		safe := html.EscapeString(p)
		safe = strings.ReplaceAll(safe, "\n", "<br>")
		htmlParts = append(htmlParts, "<p>"+safe+"</p>")
		segments = append(segments, Segment{Type: SegmentParagraph, Text: p})
	}

	out := Payload{Segments: segments}
	if len(htmlParts) > 0 {
		out.HTML = strings.Join(htmlParts, "\n")
		out.Markdown = strings.Join(paragraphs, "\n\n")
	} else {
		out.HTML = "<p>(empty)</p>"
	}
	return out
}
