package mdv

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/mdv/internal/palette"
)

const (
	osc8Start = "\x1b]8;;"
	osc8ST    = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// WriteOption configures ANSI output.
type WriteOption func(*writeConfig)

type writeConfig struct {
	osc8 bool
}

// WithOSC8 toggles OSC 8 hyperlinks around link spans.
func WithOSC8(enabled bool) WriteOption {
	return func(cfg *writeConfig) {
		cfg.osc8 = enabled
	}
}

// WriteANSI writes the document as ANSI-styled terminal text. Styling is
// reset at every style change and at the end of each line, so partial output
// never leaves the terminal in a dangling state.
func WriteANSI(w io.Writer, doc *Document, th Theme, opts ...WriteOption) error {
	var cfg writeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if th == nil {
		th = DefaultTheme()
	}
	styles := th.Styles()

	bw := bufio.NewWriter(w)
	for _, line := range doc.Lines {
		current := ""
		link := ""
		for _, sp := range line.Spans {
			if sp.Text == "" {
				continue
			}
			if cfg.osc8 && sp.Style.Link != link {
				if link != "" {
					bw.WriteString(osc8End)
				}
				if sp.Style.Link != "" {
					bw.WriteString(osc8Start + sp.Style.Link + osc8ST)
				}
				link = sp.Style.Link
			}
			prefix := spanPrefix(styles, sp.Style)
			if prefix != current {
				if current != "" {
					bw.WriteString(palette.Reset)
				}
				bw.WriteString(prefix)
				current = prefix
			}
			bw.WriteString(sp.Text)
		}
		if link != "" {
			bw.WriteString(osc8End)
		}
		if current != "" {
			bw.WriteString(palette.Reset)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PlainText renders the document without any escape sequences.
func PlainText(doc *Document) string {
	var b strings.Builder
	for _, line := range doc.Lines {
		b.WriteString(line.Text())
		b.WriteByte('\n')
	}
	return b.String()
}

// spanPrefix resolves a span's full escape prefix: the theme colour for its
// semantic slot plus attribute sequences from the style flags. Highlighter
// spans carry their own sequence and bypass the theme.
func spanPrefix(styles Styles, st Style) string {
	if st.Seq != "" {
		return st.Seq
	}
	colour := styles.Text
	switch st.Role {
	case RoleHeading1, RoleHeading2, RoleHeading3, RoleHeading4, RoleHeading5, RoleHeading6:
		colour = styles.Heading[int(st.Role-RoleHeading1)]
	case RoleQuoteMark:
		colour = styles.Quote
	case RoleListMarker:
		colour = styles.ListMarker
	case RoleLinkURL:
		colour = styles.LinkURL
	case RoleRule:
		colour = styles.ThematicBreak
	case RoleTableBorder:
		colour = styles.TableBorder
	case RoleTaskDone:
		colour = styles.TaskDone
	case RoleTaskPending:
		colour = styles.TaskPending
	default:
		switch {
		case st.Code:
			colour = styles.CodeInline
		case st.Link != "":
			colour = styles.LinkText
		case st.Strike && styles.Strikethrough != "":
			colour = styles.Strikethrough
		case st.Bold && styles.Strong != "":
			colour = styles.Strong
		case st.Italic && styles.Emphasis != "":
			colour = styles.Emphasis
		}
	}

	var b strings.Builder
	b.WriteString(colour)
	if st.Bold {
		b.WriteString(palette.Bold)
	}
	if st.Italic {
		b.WriteString(palette.Italic)
	}
	if st.Strike {
		b.WriteString(palette.Strike)
	}
	if st.Link != "" && st.Role == RoleNone {
		b.WriteString(palette.Underline)
	}
	return b.String()
}

// DetectOSC8Support reports whether the current environment likely supports
// OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || termProgram == "vscode" {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}
