package mdv

import (
	"os"
	"testing"
)

func mustParse(t *testing.T, src string) []Event {
	t.Helper()
	events, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return events
}

func TestParseBalancedEvents(t *testing.T) {
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	events, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	depth := map[TagKind]int{}
	for _, ev := range events {
		switch ev.Kind {
		case EventStart:
			depth[ev.Tag.Kind]++
		case EventEnd:
			depth[ev.Tag.Kind]--
			if depth[ev.Tag.Kind] < 0 {
				t.Fatalf("end before start for tag kind %d", ev.Tag.Kind)
			}
		}
	}
	for kind, d := range depth {
		if d != 0 {
			t.Fatalf("unbalanced tag kind %d: depth %d", kind, d)
		}
	}
}

func TestParseHeadingLevels(t *testing.T) {
	events := mustParse(t, "## second\n")
	if len(events) < 2 {
		t.Fatalf("too few events: %v", events)
	}
	start := events[0]
	if start.Kind != EventStart || start.Tag.Kind != TagHeading || start.Tag.Level != 2 {
		t.Fatalf("unexpected heading start: %+v", start)
	}
}

func TestParseCodeBlockLanguage(t *testing.T) {
	events := mustParse(t, "```go linenos\nx := 1\n```\n")
	start := events[0]
	if start.Tag.Kind != TagCodeBlock || start.Tag.Lang != "go" {
		t.Fatalf("expected code block with language go, got %+v", start)
	}
	if events[1].Kind != EventText || events[1].Text != "x := 1\n" {
		t.Fatalf("expected raw code text, got %+v", events[1])
	}
}

func TestParseTaskCheckbox(t *testing.T) {
	events := mustParse(t, "- [x] done\n- [ ] todo\n")
	var markers []bool
	for _, ev := range events {
		if ev.Kind == EventTaskMarker {
			markers = append(markers, ev.Checked)
		}
	}
	if len(markers) != 2 || !markers[0] || markers[1] {
		t.Fatalf("expected checked then unchecked markers, got %v", markers)
	}
}

func TestParseTableAlignments(t *testing.T) {
	src := "| a | b | c | d |\n| :- | :-: | -: | - |\n| 1 | 2 | 3 | 4 |\n"
	events := mustParse(t, src)
	var aligns []Alignment
	for _, ev := range events {
		if ev.Kind == EventStart && ev.Tag.Kind == TagTable {
			aligns = ev.Tag.Aligns
		}
	}
	want := []Alignment{AlignLeft, AlignCenter, AlignRight, AlignNone}
	if len(aligns) != len(want) {
		t.Fatalf("expected %v, got %v", want, aligns)
	}
	for i := range want {
		if aligns[i] != want[i] {
			t.Fatalf("column %d: expected %v, got %v", i, want[i], aligns[i])
		}
	}
}

func TestParseBreaks(t *testing.T) {
	events := mustParse(t, "soft\nbreak  \nhard\n")
	var soft, hard int
	for _, ev := range events {
		switch ev.Kind {
		case EventSoftBreak:
			soft++
		case EventHardBreak:
			hard++
		}
	}
	if soft != 1 || hard != 1 {
		t.Fatalf("expected one soft and one hard break, got %d/%d", soft, hard)
	}
}

func TestParseOrderedListStart(t *testing.T) {
	events := mustParse(t, "7. seven\n8. eight\n")
	for _, ev := range events {
		if ev.Kind == EventStart && ev.Tag.Kind == TagList {
			if !ev.Tag.Ordered || ev.Tag.Start != 7 {
				t.Fatalf("expected ordered list starting at 7, got %+v", ev.Tag)
			}
			return
		}
	}
	t.Fatal("no list start event")
}

func TestParseEmphasisLevels(t *testing.T) {
	events := mustParse(t, "*it* **bold** ~~gone~~\n")
	kinds := map[TagKind]int{}
	for _, ev := range events {
		if ev.Kind == EventStart {
			kinds[ev.Tag.Kind]++
		}
	}
	if kinds[TagEmphasis] != 1 || kinds[TagStrong] != 1 || kinds[TagStrikethrough] != 1 {
		t.Fatalf("unexpected inline tag counts: %v", kinds)
	}
}

func TestParseRawHTMLDropped(t *testing.T) {
	events := mustParse(t, "before\n\n<div>raw</div>\n\nafter\n")
	for _, ev := range events {
		if ev.Kind == EventText && ev.Text == "raw" {
			t.Fatalf("raw HTML content must not produce text events")
		}
	}
}
