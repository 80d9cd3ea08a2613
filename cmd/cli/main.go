package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/fleet-tools/fleet-atlas/pkg/runtime/terminal"
	"github.com/fleet-tools/fleet-atlas/pkg/services/report"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	dsn := os.Getenv("FLEET_ATLAS_DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("FLEET_ATLAS_DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := fleet.NewPostgresStore(db)
	if err != nil {
		return fmt.Errorf("failed to create fleet store: %w", err)
	}

	reports, err := report.NewService(store)
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	cli := terminal.NewCLI(terminal.Options{
		Reports: reports,
		Output:  os.Stdout,
	})

	return cli.Execute()
}
