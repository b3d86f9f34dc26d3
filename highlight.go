package mdv

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultCodeStyle = "monokai"

// Highlighter converts the raw text of a fenced code block into styled
// lines. Implementations must not wrap; the renderer truncates over-wide
// lines itself.
type Highlighter func(code, lang string) []Line

var builtinHighlighter = ChromaHighlighter(defaultCodeStyle)

func defaultHighlighter() Highlighter {
	return builtinHighlighter
}

// PlainHighlighter renders code without syntax colouring.
func PlainHighlighter() Highlighter {
	return func(code, _ string) []Line {
		return plainCodeLines(code)
	}
}

// ChromaHighlighter highlights code with the named chroma style. Unknown
// style and language names fall back to sensible defaults; highlighting
// never fails, the worst case is plain output.
func ChromaHighlighter(styleName string) Highlighter {
	style := styles.Get(styleName)
	return func(code, lang string) []Line {
		lexer := lexers.Get(lang)
		if lexer == nil {
			lexer = lexers.Analyse(code)
		}
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)
		it, err := lexer.Tokenise(nil, code)
		if err != nil {
			return plainCodeLines(code)
		}

		var lines []Line
		var current Line
		for _, tok := range it.Tokens() {
			seq := sgrFor(style.Get(tok.Type))
			for i, part := range strings.Split(tok.Value, "\n") {
				if i > 0 {
					lines = append(lines, current)
					current = Line{}
				}
				if part == "" {
					continue
				}
				current.Spans = append(current.Spans, Span{
					Text:  part,
					Style: Style{Code: true, Seq: seq},
				})
			}
		}
		if len(current.Spans) > 0 || len(lines) == 0 {
			lines = append(lines, current)
		}
		return lines
	}
}

func plainCodeLines(code string) []Line {
	raw := strings.Split(code, "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		if s == "" {
			continue
		}
		lines[i] = Line{Spans: []Span{{Text: s, Style: Style{Code: true}}}}
	}
	return lines
}

// sgrFor builds the raw SGR sequence for a chroma style entry. Truecolor
// is assumed; terminals without it degrade on their own.
func sgrFor(entry chroma.StyleEntry) string {
	var attrs []string
	if entry.Bold == chroma.Yes {
		attrs = append(attrs, "1")
	}
	if entry.Italic == chroma.Yes {
		attrs = append(attrs, "3")
	}
	if entry.Underline == chroma.Yes {
		attrs = append(attrs, "4")
	}
	if entry.Colour.IsSet() {
		attrs = append(attrs, fmt.Sprintf("38;2;%d;%d;%d",
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Background.IsSet() {
		attrs = append(attrs, fmt.Sprintf("48;2;%d;%d;%d",
			entry.Background.Red(), entry.Background.Green(), entry.Background.Blue()))
	}
	if len(attrs) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(attrs, ";") + "m"
}
