package mdv

import (
	"fmt"
	"strings"
)

const defaultMaxCellLines = 5

type listState struct {
	ordered bool
	counter uint64
}

// renderer is the event-processing state machine. It owns the in-progress
// document and every intermediate buffer for the duration of one render
// pass; nothing escapes the pass except the final line sequence.
type renderer struct {
	width int
	cfg   renderConfig

	lines []Line
	comp  composer

	lead []Span // first-line prefix: bullet or heading marker
	hang int    // continuation indent inside the current list item

	listStack  []listState
	quoteDepth int
	itemParas  int

	table *tableBuffer

	inCode   bool
	codeLang string
	codeBuf  strings.Builder
}

// Render parses markdown source and renders it at the target width. Front
// matter is stripped and the input validated before the pass begins.
func Render(src []byte, width int, opts ...Option) (*Document, error) {
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	events, err := Parse(StripFrontMatter(src))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return RenderEvents(events, width, opts...)
}

// RenderEvents runs one full render pass over a parser event stream. The
// pass is a pure function of its inputs: identical events, width and
// options always produce an identical document.
func RenderEvents(events []Event, width int, opts ...Option) (*Document, error) {
	if width <= 0 {
		return nil, fmt.Errorf("render: %w", ErrInvalidWidth)
	}
	cfg := renderConfig{maxCellLines: defaultMaxCellLines}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	r := &renderer{width: width, cfg: cfg}
	for _, ev := range events {
		if err := r.process(ev); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
	if err := r.finish(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Document{Lines: r.lines, Width: width}, nil
}

func (r *renderer) process(ev Event) error {
	switch ev.Kind {
	case EventStart:
		return r.startTag(ev.Tag)
	case EventEnd:
		return r.endTag(ev.Tag)
	case EventText:
		if r.inCode {
			r.codeBuf.WriteString(ev.Text)
			return nil
		}
		r.comp.text(ev.Text)
	case EventCode:
		r.comp.code(ev.Text)
	case EventSoftBreak:
		r.comp.softBreak()
	case EventHardBreak:
		r.comp.hardBreak()
	case EventRule:
		r.flushPending()
		r.rule()
	case EventTaskMarker:
		r.taskMarker(ev.Checked)
	}
	return nil
}

func (r *renderer) startTag(tag Tag) error {
	switch tag.Kind {
	case TagHeading:
		r.flushPending()
		style := Style{Bold: true, Role: headingRole(tag.Level)}
		r.comp.styles.push(style)
		r.lead = []Span{{Text: headingPrefix(tag.Level), Style: style}}

	case TagParagraph:
		if r.table != nil {
			return nil
		}
		if len(r.listStack) > 0 {
			r.itemParas++
			if r.itemParas > 1 {
				r.flushPending()
			}
		} else {
			r.flushPending()
		}

	case TagBlockQuote:
		r.flushPending()
		r.quoteDepth++

	case TagList:
		r.flushPending()
		counter := tag.Start
		if counter == 0 {
			counter = 1
		}
		r.listStack = append(r.listStack, listState{ordered: tag.Ordered, counter: counter})

	case TagItem:
		r.flushPending()
		r.itemParas = 0
		r.lead = []Span{r.bullet()}
		r.hang = spansWidth(r.lead)

	case TagCodeBlock:
		r.flushPending()
		r.inCode = true
		r.codeLang = tag.Lang
		r.codeBuf.Reset()

	case TagTable:
		r.flushPending()
		r.table = newTableBuffer(tag.Aligns)

	case TagTableHead:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.table.inHeader = true

	case TagTableRow:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.table.startRow()

	case TagTableCell:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.comp.take() // drop any stray content before the cell

	default:
		r.comp.inlineStart(tag)
	}
	return nil
}

func (r *renderer) endTag(tag Tag) error {
	switch tag.Kind {
	case TagHeading:
		if err := r.comp.styles.pop(); err != nil {
			return err
		}
		r.flushPending()
		r.blank()

	case TagParagraph:
		if r.table != nil {
			return nil
		}
		r.flushPending()
		if len(r.listStack) == 0 {
			r.blank()
		}

	case TagBlockQuote:
		if r.quoteDepth == 0 {
			return ErrUnbalancedEvents
		}
		r.flushPending()
		r.quoteDepth--
		if r.quoteDepth == 0 {
			r.blank()
		}

	case TagList:
		if len(r.listStack) == 0 {
			return ErrUnbalancedEvents
		}
		r.listStack = r.listStack[:len(r.listStack)-1]
		if len(r.listStack) == 0 {
			r.flushPending()
			r.blank()
		}

	case TagItem:
		r.flushPending()
		r.hang = 0

	case TagCodeBlock:
		r.inCode = false
		r.emitCode()
		r.blank()

	case TagTable:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.lines = append(r.lines, r.table.render(r.width, r.cfg.maxCellLines)...)
		r.table = nil
		r.blank()

	case TagTableHead:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.table.inHeader = false

	case TagTableRow:

	case TagTableCell:
		if r.table == nil {
			return ErrUnbalancedEvents
		}
		r.table.addCell(r.comp.take())

	default:
		return r.comp.inlineEnd(tag, r.urlLimit())
	}
	return nil
}

func (r *renderer) finish() error {
	if r.comp.styles.depth() != 0 || r.quoteDepth != 0 || len(r.listStack) != 0 ||
		r.table != nil || r.inCode {
		return ErrUnbalancedEvents
	}
	r.flushPending()
	for len(r.lines) > 0 && len(r.lines[len(r.lines)-1].Spans) == 0 {
		r.lines = r.lines[:len(r.lines)-1]
	}
	return nil
}

// flushPending wraps the composed inline spans at the frame's indent and
// appends the resulting lines. The lead prefix goes on the first line;
// continuation lines indent under it, with blockquote marks repeated on
// every line.
func (r *renderer) flushPending() {
	spans := r.comp.take()
	lead := r.lead
	r.lead = nil
	quote := r.quotePrefix()

	if len(spans) == 0 {
		if len(lead) > 0 {
			r.lines = append(r.lines, Line{Spans: append(quote, lead...)})
		}
		return
	}

	hang := r.hang // mid-item flushes indent every line under the bullet
	if len(lead) > 0 {
		hang = spansWidth(lead)
	}
	avail := r.width - spansWidth(quote) - hang
	if avail < 1 {
		avail = 1
	}

	for i, wl := range wrapSpans(spans, avail, 0) {
		out := append([]Span{}, quote...)
		switch {
		case i == 0 && len(lead) > 0:
			out = append(out, lead...)
		case hang > 0:
			out = append(out, Span{Text: strings.Repeat(" ", hang)})
		}
		out = append(out, wl.Spans...)
		r.lines = append(r.lines, Line{Spans: out})
	}
}

func (r *renderer) blank() {
	if n := len(r.lines); n == 0 || len(r.lines[n-1].Spans) == 0 {
		return
	}
	r.lines = append(r.lines, Line{})
}

func (r *renderer) quotePrefix() []Span {
	if r.quoteDepth == 0 {
		return nil
	}
	spans := make([]Span, r.quoteDepth)
	for i := range spans {
		spans[i] = Span{Text: "│ ", Style: Style{Role: RoleQuoteMark}}
	}
	return spans
}

func (r *renderer) bullet() Span {
	indent := strings.Repeat("  ", len(r.listStack)-1)
	state := &r.listStack[len(r.listStack)-1]
	var marker string
	if state.ordered {
		marker = fmt.Sprintf("%s%d. ", indent, state.counter)
		state.counter++
	} else {
		glyph := "▪"
		switch len(r.listStack) {
		case 1:
			glyph = "•"
		case 2:
			glyph = "◦"
		}
		marker = indent + glyph + " "
	}
	return Span{Text: marker, Style: Style{Role: RoleListMarker}}
}

func (r *renderer) taskMarker(checked bool) {
	if checked {
		r.comp.append(Span{Text: "[✓] ", Style: Style{Role: RoleTaskDone}})
		return
	}
	r.comp.append(Span{Text: "[ ] ", Style: Style{Role: RoleTaskPending}})
}

func (r *renderer) rule() {
	w := r.width - 2
	if w < 1 {
		w = 1
	}
	r.lines = append(r.lines, Line{Spans: []Span{{
		Text:  strings.Repeat("─", w),
		Style: Style{Role: RoleRule},
	}}})
	r.blank()
}

// emitCode hands the buffered code block to the highlighter and appends its
// lines verbatim at a two-space indent. Code is never re-wrapped; lines
// wider than the target are truncated instead, since re-wrapping code
// breaks meaning.
func (r *renderer) emitCode() {
	code := strings.TrimSuffix(r.codeBuf.String(), "\n")
	r.codeBuf.Reset()
	lang := r.codeLang
	r.codeLang = ""

	h := r.cfg.highlighter
	if h == nil {
		h = defaultHighlighter()
	}
	quote := r.quotePrefix()
	for _, line := range h(code, lang) {
		spans := append(append([]Span{}, quote...), Span{Text: "  "})
		spans = append(spans, line.Spans...)
		r.lines = append(r.lines, truncateLine(Line{Spans: spans}, r.width))
	}
}

func (r *renderer) urlLimit() int {
	limit := r.width - 4
	if limit < 8 {
		limit = 8
	}
	return limit
}

func headingPrefix(level int) string {
	switch level {
	case 1:
		return "# "
	case 2:
		return "## "
	case 3:
		return "### "
	default:
		return "#### "
	}
}
