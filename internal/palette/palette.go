// Package palette defines the raw ANSI colour palettes behind the built-in
// themes. Colours are stored as ready-to-write SGR prefixes so themes never
// pay a formatting cost at render time.
package palette

import "fmt"

// Attribute SGR prefixes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette holds the colour prefixes for every semantic slot a theme fills.
// Attributes (bold, italic, strike, underline) are layered on top by the
// writer; palettes carry colour only.
type Palette struct {
	Text          string
	H1            string
	H2            string
	H3            string
	H4            string
	H5            string
	H6            string
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

func fg(hex int) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", hex>>16&0xff, hex>>8&0xff, hex&0xff)
}

// PaletteDefault sticks to the basic 16-colour SGR set so it follows the
// terminal's own scheme.
var PaletteDefault = Palette{
	H1:            "\x1b[36m",
	H2:            "\x1b[36m",
	H3:            "\x1b[96m",
	H4:            "\x1b[96m",
	H5:            "\x1b[96m",
	H6:            "\x1b[96m",
	CodeInline:    "\x1b[93m",
	CodeBlock:     "\x1b[37m",
	Quote:         "\x1b[90m",
	ListMarker:    "\x1b[33m",
	LinkText:      "\x1b[34m",
	LinkURL:       "\x1b[90m",
	ThematicBreak: "\x1b[90m",
	TableBorder:   "\x1b[90m",
	TaskDone:      "\x1b[32m",
	TaskPending:   "\x1b[31m",
}

var PaletteDracula = Palette{
	Text:          fg(0xf8f8f2),
	H1:            fg(0xbd93f9),
	H2:            fg(0xbd93f9),
	H3:            fg(0xff79c6),
	H4:            fg(0xff79c6),
	H5:            fg(0x8be9fd),
	H6:            fg(0x8be9fd),
	Emphasis:      fg(0xf1fa8c),
	Strong:        fg(0xffb86c),
	Strikethrough: fg(0x6272a4),
	CodeInline:    fg(0x50fa7b),
	CodeBlock:     fg(0xf8f8f2),
	Quote:         fg(0x6272a4),
	ListMarker:    fg(0xff79c6),
	LinkText:      fg(0x8be9fd),
	LinkURL:       fg(0x6272a4),
	ThematicBreak: fg(0x6272a4),
	TableBorder:   fg(0x6272a4),
	TaskDone:      fg(0x50fa7b),
	TaskPending:   fg(0xff5555),
}

var PaletteNord = Palette{
	Text:          fg(0xd8dee9),
	H1:            fg(0x88c0d0),
	H2:            fg(0x88c0d0),
	H3:            fg(0x81a1c1),
	H4:            fg(0x81a1c1),
	H5:            fg(0x5e81ac),
	H6:            fg(0x5e81ac),
	Emphasis:      fg(0xebcb8b),
	Strong:        fg(0x8fbcbb),
	Strikethrough: fg(0x4c566a),
	CodeInline:    fg(0xa3be8c),
	CodeBlock:     fg(0xd8dee9),
	Quote:         fg(0x4c566a),
	ListMarker:    fg(0x81a1c1),
	LinkText:      fg(0x88c0d0),
	LinkURL:       fg(0x4c566a),
	ThematicBreak: fg(0x4c566a),
	TableBorder:   fg(0x4c566a),
	TaskDone:      fg(0xa3be8c),
	TaskPending:   fg(0xbf616a),
}

var PaletteGruvbox = Palette{
	Text:          fg(0xebdbb2),
	H1:            fg(0xfabd2f),
	H2:            fg(0xfabd2f),
	H3:            fg(0xfe8019),
	H4:            fg(0xfe8019),
	H5:            fg(0x83a598),
	H6:            fg(0x83a598),
	Emphasis:      fg(0xd3869b),
	Strong:        fg(0xfb4934),
	Strikethrough: fg(0x928374),
	CodeInline:    fg(0xb8bb26),
	CodeBlock:     fg(0xebdbb2),
	Quote:         fg(0x928374),
	ListMarker:    fg(0x8ec07c),
	LinkText:      fg(0x83a598),
	LinkURL:       fg(0x928374),
	ThematicBreak: fg(0x928374),
	TableBorder:   fg(0x928374),
	TaskDone:      fg(0xb8bb26),
	TaskPending:   fg(0xfb4934),
}

var PaletteSolarizedDark = Palette{
	Text:          fg(0x839496),
	H1:            fg(0x268bd2),
	H2:            fg(0x268bd2),
	H3:            fg(0x2aa198),
	H4:            fg(0x2aa198),
	H5:            fg(0x6c71c4),
	H6:            fg(0x6c71c4),
	Emphasis:      fg(0xb58900),
	Strong:        fg(0xcb4b16),
	Strikethrough: fg(0x586e75),
	CodeInline:    fg(0x859900),
	CodeBlock:     fg(0x93a1a1),
	Quote:         fg(0x586e75),
	ListMarker:    fg(0xd33682),
	LinkText:      fg(0x268bd2),
	LinkURL:       fg(0x586e75),
	ThematicBreak: fg(0x586e75),
	TableBorder:   fg(0x586e75),
	TaskDone:      fg(0x859900),
	TaskPending:   fg(0xdc322f),
}

var PaletteGithubDark = Palette{
	Text:          fg(0xc9d1d9),
	H1:            fg(0x58a6ff),
	H2:            fg(0x58a6ff),
	H3:            fg(0xbc8cff),
	H4:            fg(0xbc8cff),
	H5:            fg(0x8b949e),
	H6:            fg(0x8b949e),
	Emphasis:      fg(0xffa657),
	Strong:        fg(0xff7b72),
	Strikethrough: fg(0x8b949e),
	CodeInline:    fg(0x7ee787),
	CodeBlock:     fg(0xc9d1d9),
	Quote:         fg(0x8b949e),
	ListMarker:    fg(0x58a6ff),
	LinkText:      fg(0x58a6ff),
	LinkURL:       fg(0x8b949e),
	ThematicBreak: fg(0x8b949e),
	TableBorder:   fg(0x8b949e),
	TaskDone:      fg(0x7ee787),
	TaskPending:   fg(0xff7b72),
}

var PaletteTokyoNight = Palette{
	Text:          fg(0xc0caf5),
	H1:            fg(0x7aa2f7),
	H2:            fg(0x7aa2f7),
	H3:            fg(0x7dcfff),
	H4:            fg(0x7dcfff),
	H5:            fg(0xbb9af7),
	H6:            fg(0xbb9af7),
	Emphasis:      fg(0xff9e64),
	Strong:        fg(0xf7768e),
	Strikethrough: fg(0x565f89),
	CodeInline:    fg(0x9ece6a),
	CodeBlock:     fg(0xc0caf5),
	Quote:         fg(0x565f89),
	ListMarker:    fg(0xbb9af7),
	LinkText:      fg(0x7aa2f7),
	LinkURL:       fg(0x565f89),
	ThematicBreak: fg(0x565f89),
	TableBorder:   fg(0x565f89),
	TaskDone:      fg(0x9ece6a),
	TaskPending:   fg(0xf7768e),
}

// PaletteMono has no colour at all; output carries attributes only.
var PaletteMono = Palette{}
