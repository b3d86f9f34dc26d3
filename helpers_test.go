package mdv

import (
	"strings"
	"testing"
)

// stripANSI removes CSI and OSC escape sequences from terminal output.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != 0x1b {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '[':
			i++
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			if i < len(s) {
				i++
			}
		case ']':
			i++
			for i < len(s) {
				if s[i] == 0x07 {
					i++
					break
				}
				if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
					i += 2
					break
				}
				i++
			}
		default:
			i++
		}
	}
	return b.String()
}

func mustRender(t *testing.T, src string, width int, opts ...Option) *Document {
	t.Helper()
	doc, err := Render([]byte(src), width, opts...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return doc
}

func docLines(doc *Document) []string {
	out := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		out[i] = line.Text()
	}
	return out
}

func joinLines(doc *Document) string {
	return strings.Join(docLines(doc), "\n")
}

// stubHighlighter returns each code line as a single span, no styling.
func stubHighlighter(code, _ string) []Line {
	var lines []Line
	for _, s := range strings.Split(code, "\n") {
		if s == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, Line{Spans: []Span{{Text: s, Style: Style{Code: true}}}})
	}
	return lines
}
