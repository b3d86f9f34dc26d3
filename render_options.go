package mdv

// Option configures a render pass.
type Option func(*renderConfig)

type renderConfig struct {
	maxCellLines int
	highlighter  Highlighter
}

// WithMaxCellLines caps the number of wrapped lines per table body cell.
// Values below one keep the default.
func WithMaxCellLines(n int) Option {
	return func(cfg *renderConfig) {
		if n > 0 {
			cfg.maxCellLines = n
		}
	}
}

// WithHighlighter sets the syntax highlighter used for fenced code blocks.
func WithHighlighter(h Highlighter) Option {
	return func(cfg *renderConfig) {
		cfg.highlighter = h
	}
}
