package mdv

import (
	"errors"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrUnbalancedEvents reports an event stream whose start and end events
	// do not pair up. Nesting state cannot be trusted past that point, so the
	// render pass is aborted rather than emitting corrupted output.
	ErrUnbalancedEvents = errors.New("unbalanced event stream")
	// ErrInvalidWidth reports a non-positive target width.
	ErrInvalidWidth = errors.New("target width must be positive")
)

// Role marks a span as belonging to a structural element so the ANSI writer
// can color it from the active theme.
type Role uint8

const (
	RoleNone Role = iota
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleHeading4
	RoleHeading5
	RoleHeading6
	RoleQuoteMark
	RoleListMarker
	RoleLinkURL
	RoleRule
	RoleTableBorder
	RoleTaskDone
	RoleTaskPending
)

func headingRole(level int) Role {
	switch {
	case level <= 1:
		return RoleHeading1
	case level >= 6:
		return RoleHeading6
	default:
		return RoleHeading1 + Role(level-1)
	}
}

// Style is the set of attributes active on a span. Styles compose by union
// when inline spans nest. Seq carries a raw ANSI prefix for spans produced
// by an external highlighter; it is passed through opaquely.
type Style struct {
	Bold   bool
	Italic bool
	Strike bool
	Code   bool
	Link   string
	Role   Role
	Seq    string
}

// merge returns the union of s and delta. Boolean attributes combine by OR;
// a link target, role or raw sequence on the delta replaces the inherited one.
func (s Style) merge(delta Style) Style {
	out := s
	out.Bold = out.Bold || delta.Bold
	out.Italic = out.Italic || delta.Italic
	out.Strike = out.Strike || delta.Strike
	out.Code = out.Code || delta.Code
	if delta.Link != "" {
		out.Link = delta.Link
	}
	if delta.Role != RoleNone {
		out.Role = delta.Role
	}
	if delta.Seq != "" {
		out.Seq = delta.Seq
	}
	return out
}

// IsZero reports whether no attribute is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Span is an immutable styled text run, the atomic unit of rendered output.
type Span struct {
	Text  string
	Style Style
}

// Width returns the display width of the span in terminal columns.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Line is one rendered terminal line.
type Line struct {
	Spans []Span
}

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// Text returns the line's content without styling.
func (l Line) Text() string {
	var b []byte
	for _, s := range l.Spans {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Document is the output of one render pass: an ordered sequence of lines,
// each no wider than the target width. A document is built fresh on every
// pass and immutable thereafter.
type Document struct {
	Lines []Line
	Width int
}

// Height returns the number of rendered lines.
func (d *Document) Height() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// styleStack tracks the active inline styles. Each start event pushes the
// union of the delta with the current top; each end event pops. The stack
// must be empty again at document end.
type styleStack struct {
	frames []Style
}

func (st *styleStack) push(delta Style) {
	st.frames = append(st.frames, st.effective().merge(delta))
}

func (st *styleStack) pop() error {
	if len(st.frames) == 0 {
		return ErrUnbalancedEvents
	}
	st.frames = st.frames[:len(st.frames)-1]
	return nil
}

func (st *styleStack) effective() Style {
	if len(st.frames) == 0 {
		return Style{}
	}
	return st.frames[len(st.frames)-1]
}

func (st *styleStack) depth() int {
	return len(st.frames)
}
