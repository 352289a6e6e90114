// migrate applies the embedded SQL migrations for one service's database,
// e.g. go run ./cmd/migrate -service payment -direction up.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ndhoang/tuipay/internal/config"
	"github.com/ndhoang/tuipay/internal/database"
)

func main() {
	service := flag.String("service", "", "service whose schema to migrate: payment, challenge, ledger or billing")
	direction := flag.String("direction", "up", "up or down")
	flag.Parse()

	if *service == "" {
		fmt.Fprintln(os.Stderr, "migrate: -service is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.ConnectionString(), *service, *direction); err != nil {
		if errors.Is(err, database.ErrNoChange) {
			fmt.Println("no schema changes to apply")
			return
		}

		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}

	fmt.Printf("migrations applied for %s (%s)\n", *service, *direction)
}
