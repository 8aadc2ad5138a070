package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrSettingsNotFound = errors.New("settings row not found")

// Settings is the persisted bridge configuration. A single row holds it;
// module toggles live here rather than in code so the dashboard can flip
// them at runtime.
type Settings struct {
	SingularToken  string
	StreamURL      string
	TfLAppID       string
	TfLAppKey      string
	EnableTfL      bool
	TfLAutoRefresh bool
	Theme          string
	Host           string
	Port           int
}

// Address returns the HTTP listen address (host:port).
func (s *Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SettingsStore provides settings persistence.
type SettingsStore interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

// Settings returns a SettingsStore for this database.
func (db *DB) Settings() SettingsStore {
	return &settingsStore{db: db}
}

type settingsStore struct {
	db *DB
}

func (s *settingsStore) Get(ctx context.Context) (*Settings, error) {
	out := &Settings{}
	err := s.db.QueryRowContext(ctx, `
		SELECT singular_token, stream_url, tfl_app_id, tfl_app_key,
		       enable_tfl, tfl_auto_refresh, theme, host, port
		FROM settings WHERE id = 1
	`).Scan(
		&out.SingularToken, &out.StreamURL, &out.TfLAppID, &out.TfLAppKey,
		&out.EnableTfL, &out.TfLAutoRefresh, &out.Theme, &out.Host, &out.Port,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *settingsStore) Save(ctx context.Context, st *Settings) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET
			singular_token = ?, stream_url = ?, tfl_app_id = ?, tfl_app_key = ?,
			enable_tfl = ?, tfl_auto_refresh = ?, theme = ?, host = ?, port = ?,
			updated_at = datetime('now')
		WHERE id = 1
	`, st.SingularToken, st.StreamURL, st.TfLAppID, st.TfLAppKey,
		st.EnableTfL, st.TfLAutoRefresh, st.Theme, st.Host, st.Port)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
