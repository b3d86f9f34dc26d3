package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdv"
	"pkt.systems/mdv/internal/config"
	"pkt.systems/mdv/internal/viewer"
	"pkt.systems/mdv/internal/watch"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdv")
}

func main() {
	var (
		themeName  string
		widthFlag  int
		osc8Flag   string
		listThemes bool
		dump       bool
		plain      bool
		outPath    string
		maxCell    int
		logFile    string
		configPath string
	)

	flags := pflag.NewFlagSet("mdv", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", "", "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&dump, "dump", false, "Render once to stdout instead of paging")
	flags.BoolVarP(&plain, "plain", "p", false, "Plain text output, no escape sequences")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout (implies --dump)")
	flags.IntVar(&maxCell, "max-cell-lines", 0, "Max wrapped lines per table body cell")
	flags.StringVar(&logFile, "log-file", "", "Append debug logs to file")
	flags.StringVar(&configPath, "config", "", "Config file path")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdv [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nWith a single file argument and a terminal, mdv pages the file and")
		fmt.Fprintln(os.Stderr, "re-renders it when it changes. Otherwise Markdown is read from stdin")
		fmt.Fprintln(os.Stderr, "or the named files and rendered once.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printThemes()
		return
	}

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath, _ = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyConfig(cfg, flags, &themeName, &widthFlag, &osc8Flag, &maxCell, &logFile)

	log := newLogger(logFile)

	theme, ok := mdv.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}

	args := flags.Args()
	interactive := !dump && !plain && outPath == "" && len(args) == 1 &&
		term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		runViewer(args[0], theme, osc8, maxCell, log)
		return
	}

	src, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	var opts []mdv.Option
	if maxCell > 0 {
		opts = append(opts, mdv.WithMaxCellLines(maxCell))
	}
	doc, err := mdv.Render(src, resolveWidth(widthFlag), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if plain {
		_, err = io.WriteString(writer, mdv.PlainText(doc))
	} else {
		err = mdv.WriteANSI(writer, doc, theme, mdv.WithOSC8(osc8))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}

// applyConfig fills in settings the user did not pass as flags. Flags win
// over the config file, the config file over built-in defaults.
func applyConfig(cfg config.Config, flags *pflag.FlagSet, themeName *string, width *int, osc8 *string, maxCell *int, logFile *string) {
	if !flags.Changed("theme") && cfg.Theme != "" {
		*themeName = cfg.Theme
	}
	if *themeName == "" {
		*themeName = defaultThemeName
	}
	if !flags.Changed("width") && cfg.Width > 0 {
		*width = cfg.Width
	}
	if !flags.Changed("osc8") && cfg.OSC8 != "" {
		*osc8 = cfg.OSC8
	}
	if !flags.Changed("max-cell-lines") && cfg.MaxCellLines > 0 {
		*maxCell = cfg.MaxCellLines
	}
	if !flags.Changed("log-file") && cfg.LogFile != "" {
		*logFile = cfg.LogFile
	}
}

func runViewer(path string, theme mdv.Theme, osc8 bool, maxCell int, log *logrus.Logger) {
	var changes <-chan struct{}
	w, err := watch.New(path)
	if err != nil {
		log.WithError(err).Warn("file watch unavailable")
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		defer func() { _ = w.Close() }()
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.WithError(err).Warn("file watch stopped")
			}
		}()
		changes = w.Changes()
	}

	if err := viewer.Run(viewer.Options{
		Path:         path,
		Theme:        theme,
		OSC8:         osc8,
		MaxCellLines: maxCell,
		Changes:      changes,
		Log:          log,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if path == "" {
		return log
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return log
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func printThemes() {
	for _, name := range mdv.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if len(buf) > 0 && buf[len(buf)-1] != '\n' {
			buf = append(buf, '\n')
		}
		buf = append(buf, data...)
	}
	return buf, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdv.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
