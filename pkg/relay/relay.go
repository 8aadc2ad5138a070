package relay

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/datastream"
	"github.com/blueelliott/singular-controls/pkg/tfl"
)

// ErrDisabled indicates the TfL module is switched off in settings.
var ErrDisabled = errors.New("tfl integration is disabled in settings")

// AutoRefreshInterval is how often the background loop pushes statuses
// when auto-refresh is enabled.
const AutoRefreshInterval = 60 * time.Second

// StatusFetcher fetches line statuses.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, appID, appKey string) (map[string]string, error)
}

// StreamPutter pushes payloads to a datastream.
type StreamPutter interface {
	Put(ctx context.Context, streamURL string, payload any) (*datastream.Result, error)
}

// Service relays TfL line statuses to a Singular datastream. Stateless
// fetch-and-forward: it owns no registry and keeps nothing between calls.
type Service struct {
	cfg       *config.Manager
	tfl       StatusFetcher
	stream    StreamPutter
	validator *datastream.PayloadValidator
}

// NewService creates a relay Service.
func NewService(cfg *config.Manager, fetcher StatusFetcher, putter StreamPutter) *Service {
	return &Service{
		cfg:       cfg,
		tfl:       fetcher,
		stream:    putter,
		validator: datastream.NewPayloadValidator(),
	}
}

// Statuses fetches the current line statuses, or ErrDisabled when the
// module is off.
func (s *Service) Statuses(ctx context.Context) (map[string]string, error) {
	settings := s.cfg.Get()
	if !settings.EnableTfL {
		return nil, ErrDisabled
	}
	return s.tfl.FetchStatuses(ctx, settings.TfLAppID, settings.TfLAppKey)
}

// Update fetches the current statuses and forwards them to the stream.
func (s *Service) Update(ctx context.Context) (map[string]string, *datastream.Result, error) {
	statuses, err := s.Statuses(ctx)
	if err != nil {
		return nil, nil, err
	}
	result, err := s.put(ctx, statuses)
	return statuses, result, err
}

// Test forwards a payload with every line set to "TEST".
func (s *Service) Test(ctx context.Context) (map[string]string, *datastream.Result, error) {
	return s.constant(ctx, "TEST")
}

// Blank forwards a payload with every line cleared.
func (s *Service) Blank(ctx context.Context) (map[string]string, *datastream.Result, error) {
	return s.constant(ctx, "")
}

func (s *Service) constant(ctx context.Context, value string) (map[string]string, *datastream.Result, error) {
	if !s.cfg.Get().EnableTfL {
		return nil, nil, ErrDisabled
	}
	payload := make(map[string]string, len(tfl.Lines))
	for _, line := range tfl.Lines {
		payload[line] = value
	}
	result, err := s.put(ctx, payload)
	return payload, result, err
}

// Manual validates and forwards a caller-supplied payload. Manual sends
// work even when the TfL module is disabled.
func (s *Service) Manual(ctx context.Context, payload map[string]string) (*datastream.Result, error) {
	loose := make(map[string]any, len(payload))
	for k, v := range payload {
		loose[k] = v
	}
	if err := s.validator.Validate(loose); err != nil {
		return nil, err
	}
	return s.put(ctx, payload)
}

func (s *Service) put(ctx context.Context, payload map[string]string) (*datastream.Result, error) {
	return s.stream.Put(ctx, s.cfg.Get().StreamURL, payload)
}

// RunAutoRefresh pushes line statuses to the stream every
// AutoRefreshInterval while the auto-refresh flag stays on. The flag is
// re-read every tick so toggling it takes effect without a restart.
// Blocks until ctx is done.
func (s *Service) RunAutoRefresh(ctx context.Context) {
	ticker := time.NewTicker(AutoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			settings := s.cfg.Get()
			if !settings.EnableTfL || !settings.TfLAutoRefresh {
				continue
			}
			if _, _, err := s.Update(ctx); err != nil {
				log.Warn().Err(err).Msg("Auto-refresh push failed")
				continue
			}
			log.Debug().Msg("Auto-refresh pushed line statuses")
		}
	}
}
