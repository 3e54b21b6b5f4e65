// Command server runs the bible stories API: read-only story queries over
// the in-memory corpus, the deterministic story of the day, and the
// PostgreSQL-backed lesson-progress ledger.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) with environment
// variable overrides. Exit codes: 0 = clean shutdown, 1 = startup or runtime
// error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/biblestories-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
