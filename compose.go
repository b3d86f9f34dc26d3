package mdv

// composer turns text and inline events into a flat sequence of styled
// spans. Block structure (indentation, wrapping) is the renderer's concern;
// the composer only tracks inline nesting through the style stack.
type composer struct {
	styles styleStack
	spans  []Span
}

func (c *composer) inlineStart(tag Tag) {
	switch tag.Kind {
	case TagEmphasis:
		c.styles.push(Style{Italic: true})
	case TagStrong:
		c.styles.push(Style{Bold: true})
	case TagStrikethrough:
		c.styles.push(Style{Strike: true})
	case TagLink, TagImage:
		c.styles.push(Style{Link: tag.Dest})
	default:
		c.styles.push(Style{})
	}
}

// inlineEnd pops the matching style frame. Link spans are followed by the
// destination in parentheses so the target survives plain-text output.
func (c *composer) inlineEnd(tag Tag, urlLimit int) error {
	if err := c.styles.pop(); err != nil {
		return err
	}
	if (tag.Kind == TagLink || tag.Kind == TagImage) && tag.Dest != "" {
		c.spans = append(c.spans, Span{
			Text:  " (" + fitURL(tag.Dest, urlLimit) + ")",
			Style: Style{Role: RoleLinkURL},
		})
	}
	return nil
}

func (c *composer) text(s string) {
	if s == "" {
		return
	}
	c.spans = append(c.spans, Span{Text: s, Style: c.styles.effective()})
}

// code appends an inline code span. The backticks are kept so code reads as
// code even without styling; the span is never split at its inner spaces.
func (c *composer) code(s string) {
	st := c.styles.effective()
	st.Code = true
	c.spans = append(c.spans, Span{Text: "`" + s + "`", Style: st})
}

func (c *composer) softBreak() {
	c.spans = append(c.spans, Span{Text: " ", Style: c.styles.effective()})
}

func (c *composer) hardBreak() {
	c.spans = append(c.spans, Span{Text: lineBreakMarker})
}

// append adds a pre-styled span, bypassing the style stack. Used by the
// renderer for structural markers emitted mid-flow (task checkboxes).
func (c *composer) append(sp Span) {
	c.spans = append(c.spans, sp)
}

// take returns the composed spans and clears the buffer.
func (c *composer) take() []Span {
	spans := c.spans
	c.spans = nil
	return spans
}
