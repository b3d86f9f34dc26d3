package mdv

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

const ellipsis = "…"

// lineBreakMarker is the explicit line boundary emitted for hard breaks.
// The wrapper consumes it as a forced wrap point; it never reaches output.
const lineBreakMarker = "\x00\n"

func isLineBreak(s Span) bool {
	return s.Text == lineBreakMarker
}

type styledRune struct {
	r     rune
	width int
	style Style
}

type styledWord struct {
	runes         []styledRune
	width         int
	trailingSpace bool
}

func flattenSpans(spans []Span) []styledRune {
	var out []styledRune
	for _, sp := range spans {
		for _, r := range sp.Text {
			out = append(out, styledRune{r: r, width: runewidth.RuneWidth(r), style: sp.Style})
		}
	}
	return out
}

// splitWords tokenizes styled runes at space boundaries. Spaces inside a
// code-styled run do not split: a code span wraps as a whole word.
func splitWords(runes []styledRune) []styledWord {
	var words []styledWord
	var cur []styledRune
	width := 0

	flush := func(trailing bool) {
		if len(cur) == 0 {
			return
		}
		words = append(words, styledWord{runes: cur, width: width, trailingSpace: trailing})
		cur = nil
		width = 0
	}

	for _, sr := range runes {
		if sr.r == ' ' && !sr.style.Code {
			flush(true)
			continue
		}
		cur = append(cur, sr)
		width += sr.width
	}
	flush(false)
	return words
}

// coalesceRunes merges adjacent runes with identical styles back into spans.
func coalesceRunes(runes []styledRune) []Span {
	var spans []Span
	var buf strings.Builder
	var cur Style
	for i, sr := range runes {
		if i > 0 && sr.style != cur {
			spans = append(spans, Span{Text: buf.String(), Style: cur})
			buf.Reset()
		}
		cur = sr.style
		buf.WriteRune(sr.r)
	}
	if buf.Len() > 0 {
		spans = append(spans, Span{Text: buf.String(), Style: cur})
	}
	return spans
}

// wrapSpans word-wraps styled spans to the target width. maxLines bounds the
// number of output lines; zero or negative means unbounded. When the budget
// runs out the last kept line is truncated and terminated with an ellipsis
// inside the width budget. A single word wider than the width is hard-cut.
// Line break markers force a wrap. Always returns at least one line.
func wrapSpans(spans []Span, width, maxLines int) []Line {
	if width < 1 {
		width = 1
	}
	var lines []Line
	var cur []styledRune
	curWidth := 0
	truncated := false

	atLimit := func() bool {
		return maxLines > 0 && len(lines)+1 >= maxLines
	}
	breakLine := func() bool {
		if atLimit() {
			lines = append(lines, finishTruncated(cur, width))
			truncated = true
			return false
		}
		lines = append(lines, Line{Spans: coalesceRunes(trimTrailingSpace(cur))})
		cur = nil
		curWidth = 0
		return true
	}

	for segIdx, seg := range splitSegments(spans) {
		if truncated {
			break
		}
		if segIdx > 0 {
			// Forced wrap point from a hard break.
			if !breakLine() {
				break
			}
		}
		for _, word := range splitWords(flattenSpans(seg)) {
			if truncated {
				break
			}
			if curWidth > 0 && curWidth+word.width > width {
				if !breakLine() {
					break
				}
			}
			if word.width > width {
				// Hard-cut an over-wide word; never emit an over-wide line.
				for _, sr := range word.runes {
					if curWidth+sr.width > width {
						if !breakLine() {
							break
						}
					}
					if truncated {
						break
					}
					cur = append(cur, sr)
					curWidth += sr.width
				}
			} else {
				cur = append(cur, word.runes...)
				curWidth += word.width
			}
			if truncated {
				break
			}
			if word.trailingSpace && curWidth > 0 && curWidth < width {
				cur = append(cur, styledRune{r: ' ', width: 1, style: trailingStyle(word)})
				curWidth++
			}
		}
	}

	if !truncated && (len(cur) > 0 || len(lines) == 0) {
		lines = append(lines, Line{Spans: coalesceRunes(trimTrailingSpace(cur))})
	}
	return lines
}

func trailingStyle(w styledWord) Style {
	if len(w.runes) == 0 {
		return Style{}
	}
	return w.runes[len(w.runes)-1].style
}

func trimTrailingSpace(runes []styledRune) []styledRune {
	for len(runes) > 0 && runes[len(runes)-1].r == ' ' {
		runes = runes[:len(runes)-1]
	}
	return runes
}

// splitSegments cuts the span sequence at hard line break markers.
func splitSegments(spans []Span) [][]Span {
	segments := [][]Span{nil}
	for _, sp := range spans {
		if isLineBreak(sp) {
			segments = append(segments, nil)
			continue
		}
		segments[len(segments)-1] = append(segments[len(segments)-1], sp)
	}
	return segments
}

// finishTruncated closes the final line of a truncated cell: the pending
// content is cut back to leave room for the ellipsis, which itself consumes
// width budget.
func finishTruncated(cur []styledRune, width int) Line {
	budget := width - 1
	if budget < 0 {
		budget = 0
	}
	kept := cur
	w := 0
	for i, sr := range cur {
		if w+sr.width > budget {
			kept = cur[:i]
			break
		}
		w += sr.width
	}
	kept = trimTrailingSpace(kept)
	spans := coalesceRunes(kept)
	spans = append(spans, Span{Text: ellipsis})
	return Line{Spans: spans}
}

// truncateLine cuts a rendered line down to the target width, marking the
// cut with an ellipsis. Used for code lines, which are never re-wrapped.
func truncateLine(line Line, width int) Line {
	if line.Width() <= width {
		return line
	}
	if width < 1 {
		return Line{Spans: []Span{{Text: ellipsis}}}
	}
	budget := width - 1
	var out []Span
	used := 0
	for _, sp := range line.Spans {
		w := sp.Width()
		if used+w <= budget {
			out = append(out, sp)
			used += w
			continue
		}
		var b strings.Builder
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if used+rw > budget {
				break
			}
			b.WriteRune(r)
			used += rw
		}
		if b.Len() > 0 {
			out = append(out, Span{Text: b.String(), Style: sp.Style})
		}
		break
	}
	out = append(out, Span{Text: ellipsis})
	return Line{Spans: out}
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return ellipsis
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + ellipsis
}

// fitURL shortens a URL for display, dropping the scheme before resorting
// to truncation.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}
