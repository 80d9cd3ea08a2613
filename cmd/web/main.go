package main

import (
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fleet-tools/fleet-atlas/pkg/server"
	"github.com/fleet-tools/fleet-atlas/pkg/services/config"
	"github.com/fleet-tools/fleet-atlas/pkg/services/report"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Fleet Atlas reporting server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "fleet-atlas.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	store, err := fleet.NewPostgresStore(db)
	if err != nil {
		return fmt.Errorf("failed to create fleet store: %w", err)
	}

	reports, err := report.NewService(store)
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: reports,
		},
	})

	return api.Start()
}
