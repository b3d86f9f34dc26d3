package mdv

import "testing"

func TestStyleStackUnion(t *testing.T) {
	var st styleStack
	st.push(Style{Italic: true})
	st.push(Style{Link: "https://example.com"})
	st.push(Style{Bold: true})

	got := st.effective()
	if !got.Bold || !got.Italic || got.Link != "https://example.com" {
		t.Fatalf("expected bold+italic+link, got %+v", got)
	}

	if err := st.pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if err := st.pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	got = st.effective()
	if got.Bold || !got.Italic || got.Link != "" {
		t.Fatalf("expected italic only after pops, got %+v", got)
	}
}

func TestStyleStackInnerLinkWins(t *testing.T) {
	var st styleStack
	st.push(Style{Link: "https://outer.example"})
	st.push(Style{Link: "https://inner.example"})
	if got := st.effective().Link; got != "https://inner.example" {
		t.Fatalf("expected inner link target, got %q", got)
	}
	if err := st.pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got := st.effective().Link; got != "https://outer.example" {
		t.Fatalf("expected outer link target restored, got %q", got)
	}
}

func TestStyleStackPopEmpty(t *testing.T) {
	var st styleStack
	if err := st.pop(); err != ErrUnbalancedEvents {
		t.Fatalf("expected ErrUnbalancedEvents, got %v", err)
	}
}

func TestComposerNestedStyles(t *testing.T) {
	var c composer
	c.inlineStart(Tag{Kind: TagEmphasis})
	c.inlineStart(Tag{Kind: TagLink, Dest: "https://example.com"})
	c.inlineStart(Tag{Kind: TagStrong})
	c.text("deep")
	if err := c.inlineEnd(Tag{Kind: TagStrong}, 40); err != nil {
		t.Fatalf("end strong: %v", err)
	}
	if err := c.inlineEnd(Tag{Kind: TagLink, Dest: "https://example.com"}, 40); err != nil {
		t.Fatalf("end link: %v", err)
	}
	c.text("after")
	if err := c.inlineEnd(Tag{Kind: TagEmphasis}, 40); err != nil {
		t.Fatalf("end emphasis: %v", err)
	}

	spans := c.take()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %+v", len(spans), spans)
	}
	deep := spans[0]
	if !deep.Style.Bold || !deep.Style.Italic || deep.Style.Link != "https://example.com" {
		t.Fatalf("inner span missing attributes: %+v", deep.Style)
	}
	if spans[1].Style.Role != RoleLinkURL {
		t.Fatalf("expected URL span after link end, got %+v", spans[1])
	}
	after := spans[2]
	if after.Style.Link != "" || after.Style.Bold || !after.Style.Italic {
		t.Fatalf("span after link end should keep italic only: %+v", after.Style)
	}
}

func TestSpanWidthWideRunes(t *testing.T) {
	sp := Span{Text: "渲染"}
	if got := sp.Width(); got != 4 {
		t.Fatalf("expected width 4 for two wide runes, got %d", got)
	}
	line := Line{Spans: []Span{{Text: "ab"}, sp}}
	if got := line.Width(); got != 6 {
		t.Fatalf("expected line width 6, got %d", got)
	}
	if got := line.Text(); got != "ab渲染" {
		t.Fatalf("unexpected line text %q", got)
	}
}

func TestHeadingRoleClamps(t *testing.T) {
	if headingRole(0) != RoleHeading1 || headingRole(1) != RoleHeading1 {
		t.Fatal("low levels must clamp to H1")
	}
	if headingRole(3) != RoleHeading3 {
		t.Fatal("mid levels must map directly")
	}
	if headingRole(9) != RoleHeading6 {
		t.Fatal("high levels must clamp to H6")
	}
}
