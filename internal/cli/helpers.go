package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JRed1989/ambari/internal/logging"
	"github.com/JRed1989/ambari/internal/presentation/dump"
	"github.com/JRed1989/ambari/internal/presentation/tui"
	"github.com/JRed1989/ambari/pkg/config"
	"golang.org/x/term"
)

// Version is the release of the logstate tool.
const Version = "0.3.1"

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string // Overrides the config file when set
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts GlobalOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newDumpWriter resolves the output format. An empty format means markdown
// on a terminal and YAML otherwise.
func newDumpWriter(format string, w io.Writer) (dump.Writer, error) {
	if format == "" {
		if isTerminal(w) {
			format = string(dump.FormatMarkdown)
		} else {
			format = string(dump.FormatYAML)
		}
	}

	f, err := dump.ParseFormat(format)
	if err != nil {
		return dump.Writer{}, err
	}

	d := dump.Writer{Format: f}
	if f == dump.FormatMarkdown && isTerminal(w) {
		width := 0
		if file, ok := w.(*os.File); ok {
			if cols, _, err := term.GetSize(int(file.Fd())); err == nil {
				width = cols
			}
		}
		render, err := tui.NewRenderer(width)
		if err != nil {
			return d, fmt.Errorf("failed to init markdown renderer: %w", err)
		}
		d.Render = render
	}
	return d, nil
}
