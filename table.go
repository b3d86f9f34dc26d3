package mdv

import "strings"

const (
	// tableMinNatural floors a column's natural width so even empty columns
	// can show one character plus an ellipsis.
	tableMinNatural = 3
	// headerMaxLines caps wrapped header cell height.
	headerMaxLines = 5
)

// tableBuffer accumulates a table's cells until the end event. Tables are
// never streamed: column budgeting needs every cell's natural width before
// any cell can be wrapped.
type tableBuffer struct {
	aligns   []Alignment
	header   [][]Span
	rows     [][][]Span
	inHeader bool
}

func newTableBuffer(aligns []Alignment) *tableBuffer {
	return &tableBuffer{aligns: aligns}
}

func (t *tableBuffer) startRow() {
	if !t.inHeader {
		t.rows = append(t.rows, nil)
	}
}

func (t *tableBuffer) addCell(spans []Span) {
	if t.inHeader {
		t.header = append(t.header, spans)
		return
	}
	if len(t.rows) == 0 {
		t.rows = append(t.rows, nil)
	}
	t.rows[len(t.rows)-1] = append(t.rows[len(t.rows)-1], spans)
}

func spansWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += s.Width()
	}
	return w
}

// naturalWidths returns the widest pre-wrap content per column, floored at
// tableMinNatural. The header fixes the column count; extra body cells are
// ignored.
func (t *tableBuffer) naturalWidths() []int {
	n := len(t.header)
	natural := make([]int, n)
	for i := 0; i < n; i++ {
		w := spansWidth(t.header[i])
		for _, row := range t.rows {
			if i < len(row) {
				if cw := spansWidth(row[i]); cw > w {
					w = cw
				}
			}
		}
		if w < tableMinNatural {
			w = tableMinNatural
		}
		natural[i] = w
	}
	return natural
}

// budgetColumns allocates per-column character widths under the target
// width. Chrome (borders and padding) costs 3 characters per column plus
// one. When everything fits each column keeps its natural width and the
// leftover stays unused. Otherwise columns whose natural width fits inside
// the fair share of the remaining budget are locked at natural width,
// smallest effectively first; the rest split what is left evenly, with the
// remainder going to the leftmost unlocked columns. Columns never drop
// below tableMinNatural even when the terminal is narrower than the table
// can render; the overflow is accepted.
func budgetColumns(natural []int, width int) []int {
	n := len(natural)
	if n == 0 {
		return nil
	}
	chrome := n*3 + 1
	available := width - chrome
	if available < 0 {
		available = 0
	}

	total := 0
	for _, w := range natural {
		total += w
	}
	if total <= available {
		out := make([]int, n)
		copy(out, natural)
		return out
	}

	widths := make([]int, n)
	locked := make([]bool, n)
	budget := available

	for {
		unlocked := 0
		for i := range locked {
			if !locked[i] {
				unlocked++
			}
		}
		if unlocked == 0 {
			break
		}
		fair := budget / unlocked
		progressed := false
		for i := range natural {
			if locked[i] {
				continue
			}
			if natural[i] <= fair {
				widths[i] = natural[i]
				budget -= natural[i]
				locked[i] = true
				progressed = true
			}
		}
		if progressed {
			continue
		}
		// No column fits its natural width: split the rest evenly,
		// remainder to the leftmost columns, floored at the minimum.
		share := budget / unlocked
		leftover := budget % unlocked
		for i := range natural {
			if locked[i] {
				continue
			}
			w := share
			if leftover > 0 {
				w++
				leftover--
			}
			if w < tableMinNatural {
				w = tableMinNatural
			}
			widths[i] = w
		}
		break
	}
	return widths
}

// render lays out the buffered table: budgeted columns, box-drawing borders,
// a bold wrapped header, and body rows wrapped at maxCellLines.
func (t *tableBuffer) render(width, maxCellLines int) []Line {
	if len(t.header) == 0 {
		return nil
	}
	widths := budgetColumns(t.naturalWidths(), width)

	var lines []Line
	lines = append(lines, buildBorder(widths, '┌', '┬', '┐'))
	lines = append(lines, buildWrappedRow(t.header, widths, t.aligns, true, headerMaxLines)...)
	lines = append(lines, buildBorder(widths, '├', '┼', '┤'))
	for _, row := range t.rows {
		lines = append(lines, buildWrappedRow(row, widths, t.aligns, false, maxCellLines)...)
	}
	lines = append(lines, buildBorder(widths, '└', '┴', '┘'))
	return lines
}

func buildBorder(widths []int, left, mid, right rune) Line {
	var b strings.Builder
	b.WriteRune(left)
	for i, w := range widths {
		for j := 0; j < w+2; j++ {
			b.WriteRune('─')
		}
		if i+1 < len(widths) {
			b.WriteRune(mid)
		} else {
			b.WriteRune(right)
		}
	}
	return Line{Spans: []Span{{Text: b.String(), Style: Style{Role: RoleTableBorder}}}}
}

func buildEmptyRow(widths []int) Line {
	spans := []Span{borderSpan()}
	for _, w := range widths {
		spans = append(spans, Span{Text: strings.Repeat(" ", w+2)}, borderSpan())
	}
	return Line{Spans: spans}
}

func borderSpan() Span {
	return Span{Text: "│", Style: Style{Role: RoleTableBorder}}
}

// buildWrappedRow renders one logical table row as one or more visual rows.
// Rows shorter than the header are padded with empty cells; alignment
// padding applies to the first visual row only. Multi-line rows get a blank
// padding row above and below for readability.
func buildWrappedRow(cells [][]Span, widths []int, aligns []Alignment, bold bool, maxLines int) []Line {
	wrapped := make([][]Line, len(widths))
	for i, w := range widths {
		var cell []Span
		if i < len(cells) {
			cell = cells[i]
		}
		if bold {
			cell = embolden(cell)
		}
		wrapped[i] = wrapSpans(cell, w, maxLines)
	}

	visualRows := 1
	for _, cl := range wrapped {
		if len(cl) > visualRows {
			visualRows = len(cl)
		}
	}

	var out []Line
	multiline := visualRows > 1
	if multiline {
		out = append(out, buildEmptyRow(widths))
	}

	for vrow := 0; vrow < visualRows; vrow++ {
		spans := []Span{borderSpan()}
		for i, w := range widths {
			var content []Span
			contentWidth := 0
			if vrow < len(wrapped[i]) {
				content = wrapped[i][vrow].Spans
				contentWidth = wrapped[i][vrow].Width()
			}
			padding := w - contentWidth
			if padding < 0 {
				padding = 0
			}
			padLeft, padRight := 0, padding
			if vrow == 0 {
				switch align(aligns, i) {
				case AlignCenter:
					padLeft = padding / 2
					padRight = padding - padLeft
				case AlignRight:
					padLeft, padRight = padding, 0
				}
			}

			spans = append(spans, Span{Text: " "})
			if padLeft > 0 {
				spans = append(spans, Span{Text: strings.Repeat(" ", padLeft)})
			}
			spans = append(spans, content...)
			if padRight > 0 {
				spans = append(spans, Span{Text: strings.Repeat(" ", padRight)})
			}
			spans = append(spans, Span{Text: " "}, borderSpan())
		}
		out = append(out, Line{Spans: spans})
	}

	if multiline {
		out = append(out, buildEmptyRow(widths))
	}
	return out
}

func align(aligns []Alignment, i int) Alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return AlignNone
}

func embolden(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]Span, len(spans))
	for i, sp := range spans {
		sp.Style.Bold = true
		out[i] = sp
	}
	return out
}
