package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blueelliott/singular-controls/pkg/api"
	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/datastream"
	"github.com/blueelliott/singular-controls/pkg/db"
	"github.com/blueelliott/singular-controls/pkg/relay"
	"github.com/blueelliott/singular-controls/pkg/singular"
	"github.com/blueelliott/singular-controls/pkg/tfl"

	_ "github.com/blueelliott/singular-controls/docs"
)

// @title           Singular Controls API
// @version         2.0
// @description     HTTP bridge for driving Singular.Live overlay graphics from simple GET/POST commands

// @host      localhost:3113
// @BasePath  /
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/singular-controls/singular-controls.db)")
	addr := flag.String("addr", "", "Listen address (default: host:port from settings)")
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

	settings := cfg.Get()
	log.Info().
		Bool("token_set", settings.SingularToken != "").
		Bool("tfl_enabled", settings.EnableTfL).
		Str("api_address", settings.Address()).
		Msg("Settings loaded")

	// Singular control plumbing. The client reads the token through the
	// config manager, so a token change applies without a restart.
	client := singular.NewClient(singular.DefaultBaseURL, cfg.SingularToken)
	registry := singular.NewRegistry(client)
	events := singular.NewEventLog(singular.DefaultLogCapacity)
	dispatcher := singular.NewDispatcher(registry, client, events)

	if settings.SingularToken != "" {
		if count, err := registry.Rebuild(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial registry build failed; use /registry/refresh once Singular is reachable")
		} else {
			log.Info().Int("count", count).Msg("Registry built")
		}
	} else {
		log.Warn().Msg("No Singular token configured; set one via POST /config/singular")
	}

	// TfL line status relay
	relaySvc := relay.NewService(cfg, tfl.NewClient(tfl.DefaultStatusURL), datastream.NewClient())

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go relaySvc.RunAutoRefresh(refreshCtx)

	// Create and start API router
	router := api.NewRouter(cfg, registry, dispatcher, client, events, relaySvc)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		stopRefresh()
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	listen := *addr
	if listen == "" {
		listen = settings.Address()
	}
	log.Info().Str("address", listen).Msg("Starting API server")

	if err := router.Run(listen); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
