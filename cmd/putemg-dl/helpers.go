package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/biolab-put/putemg-downloader/internal/config"
	"github.com/biolab-put/putemg-downloader/internal/download"
	"github.com/biolab-put/putemg-downloader/internal/putemg"
)

// commandContext carries the persistent flag values shared by all
// subcommands.
type commandContext struct {
	configPath *string
	verbose    *bool
}

func newCommandContext(configPath *string, verbose *bool) *commandContext {
	return &commandContext{
		configPath: configPath,
		verbose:    verbose,
	}
}

// loadSettings loads settings from the configured path, or defaults
// when no path was given.
func (c *commandContext) loadSettings() (*config.Settings, error) {
	if *c.configPath == "" {
		return config.DefaultSettings(), nil
	}

	settings, err := config.Load(*c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return settings, nil
}

// buildQuery turns the positional arguments into a query:
// args[0] is a comma-separated list of experiment types, args[1] a
// comma-separated list of media types, and the rest participant IDs.
func buildQuery(args []string) putemg.Query {
	return putemg.Query{
		ExperimentTypes: splitList(args[0]),
		MediaTypes:      splitList(args[1]),
		IDs:             args[2:],
	}
}

func splitList(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// progressPrinter returns a progress callback that prints events with
// level prefixes, filtering verbose events unless requested.
func progressPrinter(verbose bool) func(download.ProgressEvent) {
	return func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !verbose {
			return
		}

		prefix := "  "
		switch event.Level {
		case download.LevelError:
			prefix = "✗ "
		case download.LevelWarning:
			prefix = "! "
		case download.LevelSuccess:
			prefix = "✓ "
		case download.LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	}
}
