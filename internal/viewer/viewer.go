// Package viewer implements the interactive pager: a bubbletea program
// that renders a markdown file at the terminal width and re-renders on
// resize and on file change.
package viewer

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"pkt.systems/mdv"
)

// Options configure a viewer session.
type Options struct {
	Path         string
	Theme        mdv.Theme
	OSC8         bool
	MaxCellLines int
	Changes      <-chan struct{}
	Log          *logrus.Logger
}

type reloadMsg struct{}

var statusStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)

// Run starts the pager and blocks until the user quits.
func Run(opts Options) error {
	if opts.Log == nil {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.ErrorLevel)
		opts.Log = log
	}
	m := &model{opts: opts}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if opts.Changes != nil {
		go func() {
			for range opts.Changes {
				p.Send(reloadMsg{})
			}
		}()
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

type model struct {
	opts     Options
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	err      error
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.render()

	case reloadMsg:
		atBottom := m.viewport.AtBottom()
		m.render()
		if atBottom {
			m.viewport.GotoBottom()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		case "r":
			m.render()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

// render re-reads the file and rebuilds the viewport content at the current
// width. Errors are kept for the status line instead of killing the pager;
// the previous content stays on screen.
func (m *model) render() {
	if !m.ready || m.width < 1 {
		return
	}
	src, err := os.ReadFile(m.opts.Path)
	if err != nil {
		m.err = err
		m.opts.Log.WithError(err).WithField("path", m.opts.Path).Error("read failed")
		return
	}

	var opts []mdv.Option
	if m.opts.MaxCellLines > 0 {
		opts = append(opts, mdv.WithMaxCellLines(m.opts.MaxCellLines))
	}
	doc, err := mdv.Render(src, m.width, opts...)
	if err != nil {
		m.err = err
		m.opts.Log.WithError(err).WithField("path", m.opts.Path).Error("render failed")
		return
	}
	m.err = nil

	var b strings.Builder
	if err := mdv.WriteANSI(&b, doc, m.opts.Theme, mdv.WithOSC8(m.opts.OSC8)); err != nil {
		m.err = err
		return
	}
	m.viewport.SetContent(b.String())
	m.opts.Log.WithFields(logrus.Fields{
		"path":  m.opts.Path,
		"width": m.width,
		"lines": doc.Height(),
	}).Debug("rendered")
}

func (m *model) statusLine() string {
	status := fmt.Sprintf("%s  %3.0f%%", m.opts.Path, m.viewport.ScrollPercent()*100)
	if m.err != nil {
		status = fmt.Sprintf("%s  [%v]", m.opts.Path, m.err)
	}
	return statusStyle.Width(m.width).Render(status)
}
