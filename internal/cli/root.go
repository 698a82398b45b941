// Package cli implements the explore command line: the web server and
// terminal versions of the views and plots.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/explore/internal/config"
	"github.com/JonMunkholm/explore/internal/core"
	"github.com/JonMunkholm/explore/internal/dataset"
	"github.com/JonMunkholm/explore/internal/logging"
	"github.com/JonMunkholm/explore/internal/plot"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configFile string
	logLevel   string
	logFormat  string
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgYellow, color.Bold)
	codeColor    = color.New(color.FgGreen)
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the explore command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "explore",
		Short: "ExploreData: interactive exploratory data analysis",
		Long: `explore loads a CSV, XLSX or XLS dataset and shows summary statistics,
null and type information and plots, each with the pandas snippet that
reproduces it. Run "explore serve" for the web UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&g.configFile, "config", "", "YAML config file")
	f.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	f.StringVar(&g.logFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")

	root.AddCommand(
		newServeCommand(g),
		newInspectCommand(g),
		newViewsCommand(g),
		newPlotCommand(g),
		newConfigCommand(g),
	)
	return root
}

// load reads the configuration and applies the global flag overrides.
func (g *globals) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFrom(config.Sources{File: g.configFile, DotEnv: []string{".env"}})
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTerminal loads config for the terminal commands, whose logs go to
// stderr so they never mix with command output.
func (g *globals) loadTerminal(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := g.load(cmd)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(logging.NewHandler(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)))
	return cfg, nil
}

func newService(cfg *config.Config) *core.Service {
	return core.NewService(core.Options{
		MaxConcurrentIngests: cfg.Upload.MaxConcurrent,
		MaxIngestWait:        cfg.Upload.MaxWaitTime,
		SessionTTL:           cfg.Session.TTL,
		MaxSessions:          cfg.Session.Max,
		PlotSize:             plot.Size{Width: cfg.View.PlotWidth, Height: cfg.View.PlotHeight},
	})
}

// session is a service with one file loaded, the terminal equivalent of a
// browser session.
type session struct {
	svc   *core.Service
	id    string
	table *dataset.Table
}

func openSession(ctx context.Context, cfg *config.Config, path string) (*session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > cfg.Upload.MaxFileSize {
		return nil, fmt.Errorf("%s: file too large (%d > %d bytes)", path, info.Size(), cfg.Upload.MaxFileSize)
	}

	svc := newService(cfg)
	id := svc.NewSession()
	t, err := svc.Ingest(ctx, id, &dataset.Upload{Filename: filepath.Base(path), Data: f})
	if err != nil {
		return nil, err
	}
	return &session{svc: svc, id: id, table: t}, nil
}

// userError turns err into the message a web user would see.
func userError(err error) error {
	if err == nil {
		return nil
	}
	if !core.IsUserFacing(err) {
		return err
	}
	return errors.New(core.FormatUserError(err))
}

func heading(w io.Writer, format string, args ...any) {
	headingColor.Fprintf(w, format+"\n", args...)
}
