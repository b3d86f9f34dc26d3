package mdv

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
)

// Parse converts markdown source into the linear event stream the renderer
// consumes. Start and end events are balanced by construction since they
// mirror the AST walk's enter/leave pairs.
func Parse(src []byte) ([]Event, error) {
	doc := markdown.Parser().Parse(text.NewReader(src))
	var events []Event
	emit := func(ev Event) {
		events = append(events, ev)
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Document:

		case *ast.Heading:
			emit(tagEvent(entering, Tag{Kind: TagHeading, Level: node.Level}))

		case *ast.Paragraph:
			emit(tagEvent(entering, Tag{Kind: TagParagraph}))

		case *ast.TextBlock:
			// Tight list item content; no paragraph events.

		case *ast.Blockquote:
			emit(tagEvent(entering, Tag{Kind: TagBlockQuote}))

		case *ast.List:
			tag := Tag{Kind: TagList, Ordered: node.IsOrdered()}
			if node.IsOrdered() && node.Start > 0 {
				tag.Start = uint64(node.Start)
			}
			emit(tagEvent(entering, tag))

		case *ast.ListItem:
			emit(tagEvent(entering, Tag{Kind: TagItem}))

		case *ast.FencedCodeBlock:
			tag := Tag{Kind: TagCodeBlock, Lang: codeLanguage(node, src)}
			if !entering {
				emit(Event{Kind: EventEnd, Tag: tag})
				break
			}
			emit(Event{Kind: EventStart, Tag: tag})
			emitBlockLines(emit, node, src)
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			tag := Tag{Kind: TagCodeBlock}
			if !entering {
				emit(Event{Kind: EventEnd, Tag: tag})
				break
			}
			emit(Event{Kind: EventStart, Tag: tag})
			emitBlockLines(emit, node, src)
			return ast.WalkSkipChildren, nil

		case *ast.ThematicBreak:
			if entering {
				emit(Event{Kind: EventRule})
			}

		case *ast.Text:
			if !entering {
				break
			}
			emit(Event{Kind: EventText, Text: string(node.Segment.Value(src))})
			switch {
			case node.HardLineBreak():
				emit(Event{Kind: EventHardBreak})
			case node.SoftLineBreak():
				emit(Event{Kind: EventSoftBreak})
			}

		case *ast.String:
			if entering {
				emit(Event{Kind: EventText, Text: string(node.Value)})
			}

		case *ast.CodeSpan:
			if entering {
				emit(Event{Kind: EventCode, Text: codeSpanText(node, src)})
				return ast.WalkSkipChildren, nil
			}

		case *ast.Emphasis:
			kind := TagEmphasis
			if node.Level >= 2 {
				kind = TagStrong
			}
			emit(tagEvent(entering, Tag{Kind: kind}))

		case *east.Strikethrough:
			emit(tagEvent(entering, Tag{Kind: TagStrikethrough}))

		case *ast.Link:
			emit(tagEvent(entering, Tag{Kind: TagLink, Dest: string(node.Destination)}))

		case *ast.AutoLink:
			if entering {
				url := string(node.URL(src))
				tag := Tag{Kind: TagLink, Dest: url}
				emit(Event{Kind: EventStart, Tag: tag})
				emit(Event{Kind: EventText, Text: string(node.Label(src))})
				emit(Event{Kind: EventEnd, Tag: tag})
				return ast.WalkSkipChildren, nil
			}

		case *ast.Image:
			emit(tagEvent(entering, Tag{Kind: TagImage, Dest: string(node.Destination)}))

		case *east.Table:
			emit(tagEvent(entering, Tag{Kind: TagTable, Aligns: tableAligns(node)}))

		case *east.TableHeader:
			emit(tagEvent(entering, Tag{Kind: TagTableHead}))

		case *east.TableRow:
			emit(tagEvent(entering, Tag{Kind: TagTableRow}))

		case *east.TableCell:
			emit(tagEvent(entering, Tag{Kind: TagTableCell}))

		case *east.TaskCheckBox:
			if entering {
				emit(Event{Kind: EventTaskMarker, Checked: node.IsChecked})
			}

		case *ast.HTMLBlock, *ast.RawHTML:
			// Raw HTML carries no terminal rendering; skipped.
			if entering {
				return ast.WalkSkipChildren, nil
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return events, nil
}

func tagEvent(entering bool, tag Tag) Event {
	if entering {
		return Event{Kind: EventStart, Tag: tag}
	}
	return Event{Kind: EventEnd, Tag: tag}
}

func codeLanguage(node *ast.FencedCodeBlock, src []byte) string {
	lang := string(node.Language(src))
	if i := strings.IndexAny(lang, " \t"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

type linedBlock interface {
	Lines() *text.Segments
}

func emitBlockLines(emit func(Event), node linedBlock, src []byte) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		emit(Event{Kind: EventText, Text: string(seg.Value(src))})
	}
}

func codeSpanText(node *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

func tableAligns(node *east.Table) []Alignment {
	aligns := make([]Alignment, len(node.Alignments))
	for i, a := range node.Alignments {
		switch a {
		case east.AlignLeft:
			aligns[i] = AlignLeft
		case east.AlignCenter:
			aligns[i] = AlignCenter
		case east.AlignRight:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns
}
