// Package cmd implements the fnd CLI application to explore a funding ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/funding"
	"github.com/etnz/funding/config"
	"github.com/etnz/funding/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&overallCmd{}, "reports")
	c.Register(&startupCmd{}, "reports")
	c.Register(&investorCmd{}, "reports")
	c.Register(&aggregateCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&startupsCmd{}, "ledger")
	c.Register(&investorsCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&serveCmd{}, "services")
	c.Register(&assistCmd{}, "services")

	c.Register(&topicCmd{}, "help")
	c.Register(subcommands.HelpCommand(), "help")
	c.Register(subcommands.FlagsCommand(), "help")
	c.Register(subcommands.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultFile, "Path to the configuration file (YAML format)")
	ledgerFile = flag.String("ledger", "", "Path to the ledger file (JSONL or CSV format), overrides the configuration")
	verbose    = flag.Bool("v", false, "Log debug messages")
)

// loadConfig reads the configuration file, then applies the environment and
// the global flags over it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if *ledgerFile != "" {
		cfg.Ledger = *ledgerFile
	}
	if *verbose {
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	return cfg, cfg.Validate()
}

// newLogger creates the application logger on w.
func newLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	level, _ := cfg.LogLevel()
	if cfg.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// openLedger loads the configured ledger.
func openLedger(cfg *config.Config, log zerolog.Logger) (*funding.Ledger, error) {
	l, err := funding.OpenLedger(cfg.Ledger)
	if err != nil {
		return nil, err
	}
	if l.Currency() != cfg.Currency {
		log.Warn().Str("ledger", l.Currency()).Str("config", cfg.Currency).Msg("ledger currency differs from the configured one")
	}
	log.Debug().Str("file", cfg.Ledger).Int("events", l.Len()).Str("version", l.Version()).Msg("ledger loaded")
	return l, nil
}

// app is what every report command needs: configuration, logger and analyzer.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	analyzer *funding.Analyzer
}

// newApp loads the configuration and the ledger, printing the error on stderr.
func newApp(opts ...funding.AnalyzerOption) (*app, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	log := newLogger(os.Stderr, cfg)
	l, err := openLedger(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	a, err := funding.NewAnalyzer(l, cfg.CacheSize, append([]funding.AnalyzerOption{funding.WithLogger(log)}, opts...)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating analyzer: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return &app{cfg: cfg, log: log, analyzer: a}, subcommands.ExitSuccess
}

// renderOptions returns the markdown options of the configuration.
func (a *app) renderOptions() renderer.Options { return renderer.Options{Unit: a.cfg.Unit} }

// top returns n, or the configured ranking size when n is not set.
func (a *app) top(n int) int {
	if n > 0 {
		return n
	}
	return a.cfg.Top
}

// printMarkdown prints markdown on stdout, styled for the terminal.
func printMarkdown(md string) { renderMarkdown(os.Stdout, md) }

// renderMarkdown writes md styled for the terminal, or raw if it cannot be styled.
func renderMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
