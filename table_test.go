package mdv

import (
	"reflect"
	"strings"
	"testing"
)

func TestBudgetColumnsNaturalFit(t *testing.T) {
	got := budgetColumns([]int{5, 9}, 30)
	if !reflect.DeepEqual(got, []int{5, 9}) {
		t.Fatalf("expected natural widths kept, got %v", got)
	}
}

func TestBudgetColumnsSingleWideColumn(t *testing.T) {
	got := budgetColumns([]int{100}, 20)
	if !reflect.DeepEqual(got, []int{16}) {
		t.Fatalf("expected single column clamped to 16, got %v", got)
	}
}

func TestBudgetColumnsLocksNarrowFirst(t *testing.T) {
	// Narrow columns keep their natural width; only the wide one is starved.
	got := budgetColumns([]int{4, 4, 50}, 40)
	if !reflect.DeepEqual(got, []int{4, 4, 22}) {
		t.Fatalf("expected narrow columns locked at natural, got %v", got)
	}
	sum := got[0] + got[1] + got[2]
	if sum != 40-(3*3+1) {
		t.Fatalf("budget must consume the usable width exactly, got sum %d", sum)
	}
}

func TestBudgetColumnsRemainderLeftmost(t *testing.T) {
	got := budgetColumns([]int{20, 20, 20}, 27)
	if !reflect.DeepEqual(got, []int{6, 6, 5}) {
		t.Fatalf("expected remainder on leftmost columns, got %v", got)
	}
}

func TestBudgetColumnsDegenerateFloor(t *testing.T) {
	got := budgetColumns([]int{8, 8}, 5)
	if !reflect.DeepEqual(got, []int{3, 3}) {
		t.Fatalf("expected floor widths in degenerate case, got %v", got)
	}
}

func TestBudgetColumnsEmpty(t *testing.T) {
	if got := budgetColumns(nil, 40); got != nil {
		t.Fatalf("expected nil for zero columns, got %v", got)
	}
}

func TestBudgetColumnsDeterministic(t *testing.T) {
	natural := []int{9, 6, 7, 8, 51, 12}
	first := budgetColumns(natural, 40)
	for i := 0; i < 20; i++ {
		if got := budgetColumns(natural, 40); !reflect.DeepEqual(got, first) {
			t.Fatalf("budget not deterministic: %v vs %v", got, first)
		}
	}
}

func buildTable(t *testing.T, aligns []Alignment, header []string, rows [][]string) *tableBuffer {
	t.Helper()
	tb := newTableBuffer(aligns)
	tb.inHeader = true
	tb.startRow()
	for _, cell := range header {
		tb.addCell(plainSpans(cell))
	}
	tb.inHeader = false
	for _, row := range rows {
		tb.startRow()
		for _, cell := range row {
			tb.addCell(plainSpans(cell))
		}
	}
	return tb
}

func TestTableRenderLayout(t *testing.T) {
	tb := buildTable(t, nil,
		[]string{"name", "state"},
		[][]string{{"alpha", "ok"}, {"beta", "down"}},
	)
	lines := tb.render(40, 5)
	texts := lineTexts(lines)
	if len(texts) != 6 {
		t.Fatalf("expected 6 lines, got %d: %v", len(texts), texts)
	}
	if !strings.HasPrefix(texts[0], "┌") || !strings.HasSuffix(texts[0], "┐") {
		t.Fatalf("bad top border: %q", texts[0])
	}
	if !strings.HasPrefix(texts[2], "├") || !strings.HasSuffix(texts[2], "┤") {
		t.Fatalf("bad header separator: %q", texts[2])
	}
	if !strings.HasPrefix(texts[5], "└") || !strings.HasSuffix(texts[5], "┘") {
		t.Fatalf("bad bottom border: %q", texts[5])
	}
	if texts[1] != "│ name  │ state │" {
		t.Fatalf("unexpected header row: %q", texts[1])
	}
	if texts[3] != "│ alpha │ ok    │" {
		t.Fatalf("unexpected body row: %q", texts[3])
	}
	// Every line the same width: natural widths 5 and 5, chrome 7.
	for i, line := range lines {
		if line.Width() != 17 {
			t.Fatalf("line %d width %d, expected 17: %q", i, line.Width(), line.Text())
		}
	}
}

func TestTableHeaderBold(t *testing.T) {
	tb := buildTable(t, nil, []string{"col"}, [][]string{{"val"}})
	lines := tb.render(40, 5)
	header := lines[1]
	found := false
	for _, sp := range header.Spans {
		if sp.Text == "col" {
			found = true
			if !sp.Style.Bold {
				t.Fatalf("header cell must be bold: %+v", sp)
			}
		}
	}
	if !found {
		t.Fatalf("header cell text missing: %q", header.Text())
	}
}

func TestTableRaggedRows(t *testing.T) {
	tb := buildTable(t, nil,
		[]string{"one", "two"},
		[][]string{
			{"only"},
			{"a", "b", "dropped"},
		},
	)
	lines := tb.render(40, 5)
	texts := lineTexts(lines)
	if texts[3] != "│ only │     │" {
		t.Fatalf("short row must be padded with empty cells: %q", texts[3])
	}
	if strings.Contains(texts[4], "dropped") {
		t.Fatalf("extra cell must be dropped: %q", texts[4])
	}
}

func TestTableAlignment(t *testing.T) {
	tb := buildTable(t,
		[]Alignment{AlignLeft, AlignCenter, AlignRight},
		[]string{"lll", "ccc", "rrr"},
		[][]string{{"a", "b", "c"}},
	)
	lines := tb.render(40, 5)
	row := lineTexts(lines)[3]
	if row != "│ a   │  b  │   c │" {
		t.Fatalf("unexpected aligned row: %q", row)
	}
}

func TestTableMultilineRowPadding(t *testing.T) {
	tb := buildTable(t, nil,
		[]string{"k", "notes"},
		[][]string{{"x", "a cell with enough words to need wrapping here"}},
	)
	lines := tb.render(24, 5)
	texts := lineTexts(lines)
	// Layout: top border, header, separator, blank pad, content rows,
	// blank pad, bottom border.
	if len(texts) < 7 {
		t.Fatalf("expected padded multiline row, got %d lines: %v", len(texts), texts)
	}
	pad := texts[3]
	if strings.Trim(pad, "│ ") != "" {
		t.Fatalf("expected blank padding row after separator, got %q", pad)
	}
	last := texts[len(texts)-2]
	if strings.Trim(last, "│ ") != "" {
		t.Fatalf("expected blank padding row before bottom border, got %q", last)
	}
	for i, line := range lines {
		if line.Width() > 24 {
			t.Fatalf("line %d exceeds width: %q", i, line.Text())
		}
	}
}

func TestTableMaxCellLinesTruncates(t *testing.T) {
	long := strings.Repeat("word ", 30)
	tb := buildTable(t, nil, []string{"notes"}, [][]string{{strings.TrimSpace(long)}})

	unbounded := len(tb.render(20, 50))
	bounded := tb.render(20, 2)
	if len(bounded) >= unbounded {
		t.Fatalf("maxCellLines must reduce output: %d vs %d", len(bounded), unbounded)
	}
	joined := strings.Join(lineTexts(bounded), "\n")
	if !strings.Contains(joined, ellipsis) {
		t.Fatalf("truncated cell must carry an ellipsis:\n%s", joined)
	}
}

func TestTableMonotonicEllipsis(t *testing.T) {
	long := strings.Repeat("word ", 30)
	tb := buildTable(t, nil, []string{"notes"}, [][]string{{strings.TrimSpace(long)}})
	prev := -1
	for maxLines := 10; maxLines >= 1; maxLines-- {
		n := len(tb.render(20, maxLines))
		if prev >= 0 && n > prev {
			t.Fatalf("line count grew when maxLines shrank: %d -> %d", prev, n)
		}
		prev = n
	}
}

func TestTableNoHeaderNoOutput(t *testing.T) {
	tb := newTableBuffer(nil)
	if lines := tb.render(40, 5); lines != nil {
		t.Fatalf("headerless table must render nothing, got %v", lineTexts(lines))
	}
}
