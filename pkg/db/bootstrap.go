package db

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is the historical listen port of the bridge.
const DefaultPort = 3113

// Bootstrap initializes the database with default settings if it's empty.
// This is called after migrations and handles first-run setup. Environment
// variables seed the initial values so containerized installs work without
// touching the dashboard.
func (db *DB) Bootstrap(ctx context.Context) error {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}

	if count > 0 {
		return nil // Already bootstrapped
	}

	port := DefaultPort
	if raw := os.Getenv("SINGULAR_CONTROLS_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO settings (id, singular_token, stream_url, tfl_app_id, tfl_app_key, port)
		VALUES (1, ?, ?, ?, ?, ?)
	`,
		os.Getenv("SINGULAR_TOKEN"),
		os.Getenv("SINGULAR_STREAM_URL"),
		os.Getenv("TFL_APP_ID"),
		os.Getenv("TFL_APP_KEY"),
		port,
	)
	if err != nil {
		return fmt.Errorf("failed to create default settings: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
