package mdv

// EventKind identifies the kind of a parser event.
type EventKind uint8

const (
	// EventStart opens the block or inline span described by the event's Tag.
	EventStart EventKind = iota
	// EventEnd closes the block or inline span described by the event's Tag.
	EventEnd
	// EventText carries a raw text run.
	EventText
	// EventCode carries an inline code span.
	EventCode
	// EventSoftBreak is a soft line break in the source; rendered as a space.
	EventSoftBreak
	// EventHardBreak is an explicit line break; rendered as a forced wrap.
	EventHardBreak
	// EventRule is a thematic break.
	EventRule
	// EventTaskMarker is a task-list checkbox.
	EventTaskMarker
)

// TagKind identifies the block or inline construct of a start/end event.
type TagKind uint8

const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockQuote
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagCodeBlock
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
)

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Tag describes the construct opened or closed by a start/end event.
// Only the fields relevant to Kind are set.
type Tag struct {
	Kind    TagKind
	Level   int         // TagHeading: 1..6
	Ordered bool        // TagList
	Start   uint64      // TagList: first ordered item number
	Aligns  []Alignment // TagTable: one per column
	Dest    string      // TagLink, TagImage
	Lang    string      // TagCodeBlock: language tag, may be empty
}

// Event is one element of the linear event stream produced by the markdown
// parser. Start and end events are balanced per document; the renderer
// treats an unbalanced stream as fatal.
type Event struct {
	Kind    EventKind
	Tag     Tag
	Text    string
	Checked bool // EventTaskMarker
}
