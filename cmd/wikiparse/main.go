// Command wikiparse looks words up on Wiktionary, or parses saved pages, and
// prints their lexical entries.
//
// Usage:
//
//	wikiparse lookup mouse --lang english
//	wikiparse translations mouse --langs de,fr
//	wikiparse parse saved.html --format json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wikiparse/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
