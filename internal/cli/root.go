// Package cli implements the wikiparse command-line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wikiparse/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/wikiparse/internal/config"
	"github.com/heartmarshall/wikiparse/internal/metrics"
	"github.com/heartmarshall/wikiparse/internal/service/lookup"
	"github.com/heartmarshall/wikiparse/internal/wikiparse"
)

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type options struct {
	language string
	format   string
	debug    bool
}

// env is built once per invocation from configuration.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	parser *wikiparse.Parser
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	e := &env{}

	cmd := &cobra.Command{
		Use:          "wikiparse",
		Short:        "Extract lexical entries from Wiktionary pages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			e.cfg = cfg
			e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			e.parser = wikiparse.NewParser(e.log)
			e.parser.SetDefaultLanguage(cfg.Parser.DefaultLanguage)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.language, "lang", "l", "", "language section to read (default from config)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatPretty, "output format: pretty|json")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	cmd.AddCommand(
		lookupCmd(opts, e),
		translationsCmd(opts, e),
		parseCmd(opts, e),
	)
	return cmd
}

// service builds a lookup service that reads live pages. The CLI never uses
// the server's cache or store.
func (e *env) service() *lookup.Service {
	return lookup.NewService(
		e.log,
		wiktionary.NewFetcher(e.cfg.Wiktionary, e.log),
		e.parser,
		metrics.New(),
		lookup.Config{Printable: e.cfg.Wiktionary.Printable},
	)
}

func validateFormat(format string) error {
	switch format {
	case formatPretty, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatPretty, formatJSON)
	}
}
