// Package mdv lays out Markdown for terminal display.
//
// The layout engine is event-driven: a parser event stream goes in, a
// Document of styled, width-bounded lines comes out. Rendering is a pure
// pass; the same events, width and options always produce the same
// document, which makes re-rendering on resize or file change cheap and
// predictable.
//
// Core properties:
//   - Event stream in, wrapped styled lines out
//   - Tables budgeted to the target width before any cell wraps
//   - Inline styles compose by union through a stack
//   - Theme-driven ANSI output as a separate, final step
//
// Example:
//
//	doc, err := mdv.Render([]byte("# Hello\n\nMarkdown in, lines out.\n"), 80)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = mdv.WriteANSI(os.Stdout, doc, mdv.DefaultTheme())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render parses with goldmark; RenderEvents accepts a prepared event stream
// directly for callers that bring their own parser.
package mdv
