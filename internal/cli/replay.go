package cli

import (
	"fmt"
	"io"

	"github.com/JRed1989/ambari/internal/presentation/tui"
	"github.com/JRed1989/ambari/pkg/appstore"
	"github.com/JRed1989/ambari/pkg/observability"
	"github.com/JRed1989/ambari/pkg/script"
	"github.com/prometheus/client_golang/prometheus"
)

// ReplayOptions configures a replay run.
type ReplayOptions struct {
	GlobalOptions
	ScriptPath string
	Format     string // yaml, json, markdown, text; empty picks by terminal
	Banner     bool
	Metrics    bool // Print dispatch counters after the state
}

// RunReplay applies the steps of a script to a fresh AppStore and prints the final state.
func RunReplay(opts ReplayOptions, stdout io.Writer) error {
	cfg, err := loadConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	steps, err := script.Load(opts.ScriptPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg, cfg.MetricsNamespace).WithLogger(logger)

	app, err := appstore.New(
		appstore.WithConfig(cfg),
		appstore.WithLogger(logger),
		appstore.WithLifecycleHooks(metrics.Hooks()),
	)
	if err != nil {
		return err
	}

	if err := app.Replay(steps); err != nil {
		return fmt.Errorf("replay %s: %w", opts.ScriptPath, err)
	}
	logger.Info("replay finished", "steps", len(steps))

	writer, err := newDumpWriter(opts.Format, stdout)
	if err != nil {
		return err
	}
	if opts.Banner {
		tui.PrintBanner(stdout, Version)
	}
	if err := writer.Write(stdout, app.Store.Snapshot()); err != nil {
		return err
	}

	if opts.Metrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, l := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", l.GetName(), l.GetValue())
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
	return nil
}
