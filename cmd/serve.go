package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/funding"
	"github.com/etnz/funding/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the profiles over HTTP" }
func (*serveCmd) Usage() string {
	return `fnd serve [-addr <host:port>]

  Serves the profiles as JSON, and the prometheus metrics on /metrics.
  POST /api/reload reads the ledger file again. See 'fnd topic server'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Defaults to the configured address.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metrics := server.NewMetrics()
	a, status := newApp(funding.WithObserver(metrics))
	if a == nil {
		return status
	}
	if c.addr != "" {
		a.cfg.Server.Addr = c.addr
	}

	srv := server.New(a.analyzer, metrics,
		server.WithLogger(a.log),
		server.WithTop(a.cfg.Top),
		server.WithReload(func() (*funding.Ledger, error) { return openLedger(a.cfg, a.log) }),
	)

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := srv.ListenAndServe(ctx, server.Config{
		Addr:         a.cfg.Server.Addr,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
