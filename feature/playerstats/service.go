package playerstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamestats/core/cache"
	"gamestats/core/metrics"
	"gamestats/core/provider"
	"gamestats/core/stats"
	"gamestats/core/utils"

	"go.uber.org/zap"
)

// Archiver stores raw provider responses. Implemented by the snapshots feature.
type Archiver interface {
	Archive(ctx context.Context, game, platform, username string, body []byte) error
}

// Request identifies the stats to return.
type Request struct {
	Game     string
	Platform string
	Username string
	Mode     string
	Fields   stats.Filter
	// Refresh bypasses the cache.
	Refresh bool
}

// Service fetches player profiles and normalizes their stats.
type Service struct {
	providers  *provider.Registry
	modes      provider.Modes
	loader     *cache.Loader
	normalizer *stats.Normalizer
	archiver   Archiver
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithArchiver archives every profile fetched from a provider.
func WithArchiver(a Archiver) Option {
	return func(s *Service) {
		s.archiver = a
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a new stats service.
func NewService(providers *provider.Registry, modes provider.Modes, loader *cache.Loader, normalizer *stats.Normalizer, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		providers:  providers,
		modes:      modes,
		loader:     loader,
		normalizer: normalizer,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Modes returns the configured mode table.
func (s *Service) Modes() provider.Modes {
	return s.modes
}

// Stats returns the normalized records of the requested mode. An unknown player,
// an unknown mode or a missing section yield an empty list.
func (s *Service) Stats(ctx context.Context, req Request) ([]stats.Record, error) {
	section, err := s.Section(ctx, req)
	if err != nil {
		if isEmptyResult(err) {
			return []stats.Record{}, nil
		}
		return nil, err
	}
	return s.Transform(section, req.Fields)
}

// Raw returns the unnormalized section of the requested mode, or an empty JSON
// list when Stats would return an empty list.
func (s *Service) Raw(ctx context.Context, req Request) (json.RawMessage, error) {
	section, err := s.Section(ctx, req)
	if err != nil {
		if isEmptyResult(err) {
			return json.RawMessage("[]"), nil
		}
		return nil, err
	}
	return section.Raw, nil
}

// Section fetches the profile (through the cache) and picks the mode section.
func (s *Service) Section(ctx context.Context, req Request) (*provider.Section, error) {
	client, err := s.providers.Get(req.Game)
	if err != nil {
		return nil, err
	}

	key := utils.JoinKey(":", client.Name(), req.Platform, req.Username)
	if req.Refresh {
		if err := s.loader.Invalidate(ctx, key); err != nil {
			s.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}

	body, _, err := s.loader.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.fetch(ctx, client, req.Platform, req.Username)
	})
	if err != nil {
		return nil, err
	}

	profile, err := provider.ParseProfile(body)
	if err != nil {
		return nil, err
	}
	return profile.Section(s.modes, req.Mode)
}

// Transform normalizes a raw section.
func (s *Service) Transform(section *provider.Section, filter stats.Filter) ([]stats.Record, error) {
	start := time.Now()

	var records []stats.Record
	switch section.Shape {
	case stats.ShapeArray:
		items, skipped, err := stats.DecodeArray(section.Raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s stats: %w", section.Mode, err)
		}
		if skipped > 0 {
			s.logger.Debug("Skipped malformed stat items",
				zap.String("mode", section.Mode),
				zap.Int("skipped", skipped),
			)
		}
		records = s.normalizer.TransformArray(items, filter)
	default:
		src, err := stats.DecodeObject(section.Raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s stats: %w", section.Mode, err)
		}
		records = s.normalizer.TransformObject(src, filter)
	}

	s.metrics.ObserveTransform(section.Shape.String(), time.Since(start), len(records))
	return records, nil
}

func (s *Service) fetch(ctx context.Context, client provider.Client, platform, username string) ([]byte, error) {
	profile, err := client.Profile(ctx, platform, username)
	if err != nil {
		return nil, err
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, client.Name(), platform, username, profile.Raw); err != nil {
			s.logger.Warn("Failed to archive profile snapshot",
				zap.String("platform", platform),
				zap.String("username", username),
				zap.Error(err),
			)
		}
	}
	return profile.Raw, nil
}

func isEmptyResult(err error) bool {
	return errors.Is(err, provider.ErrNotFound) ||
		errors.Is(err, provider.ErrUnknownMode) ||
		errors.Is(err, provider.ErrNoSection)
}
