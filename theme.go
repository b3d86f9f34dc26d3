package mdv

import (
	"sort"
	"strings"

	"pkt.systems/mdv/internal/palette"
)

// Styles groups the colour prefixes used when writing a document as ANSI
// text. Fields hold raw SGR prefixes; an empty field means no colour for
// that slot. Attribute sequences (bold, italic, strike) are added by the
// writer from the span flags, so styles here stay colour-only.
type Styles struct {
	Text          string
	Heading       [6]string
	Emphasis      string
	Strong        string
	Strikethrough string
	CodeInline    string
	CodeBlock     string
	Quote         string
	ListMarker    string
	LinkText      string
	LinkURL       string
	ThematicBreak string
	TableBorder   string
	TaskDone      string
	TaskPending   string
}

// Theme provides named styles for terminal output.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          p.Text,
		Heading:       [6]string{p.H1, p.H2, p.H3, p.H4, p.H5, p.H6},
		Emphasis:      p.Emphasis,
		Strong:        p.Strong,
		Strikethrough: p.Strikethrough,
		CodeInline:    p.CodeInline,
		CodeBlock:     p.CodeBlock,
		Quote:         p.Quote,
		ListMarker:    p.ListMarker,
		LinkText:      p.LinkText,
		LinkURL:       p.LinkURL,
		ThematicBreak: p.ThematicBreak,
		TableBorder:   p.TableBorder,
		TaskDone:      p.TaskDone,
		TaskPending:   p.TaskPending,
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-dark":    theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"tokyo-night":    theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"mono":           theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. The empty name selects the
// default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	th, ok := builtinThemes[normalized]
	return th, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
