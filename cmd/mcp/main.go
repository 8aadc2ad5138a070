package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/db"
	scmcp "github.com/blueelliott/singular-controls/pkg/mcp"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/singular-controls/singular-controls.db)")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping settings...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap settings")
		}
		log.Info().Msg("Settings bootstrapped successfully")
	}

	// Load configuration
	cfg, err := config.Load(ctx, database.Settings())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}

	client := singular.NewClient(singular.DefaultBaseURL, cfg.SingularToken)
	registry := singular.NewRegistry(client)
	events := singular.NewEventLog(singular.DefaultLogCapacity)
	dispatcher := singular.NewDispatcher(registry, client, events)

	if cfg.Get().SingularToken != "" {
		if count, err := registry.Rebuild(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial registry build failed; use the refresh_registry tool once Singular is reachable")
		} else {
			log.Info().Int("count", count).Msg("Registry built")
		}
	}

	// Create and start MCP server
	mcpServer := scmcp.NewServer(registry, dispatcher, events)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
