package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gamestats/core/metrics"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// TrackerName is the game served by the Tracker Network client.
const TrackerName = "fortnite"

const maxErrorBody = 512

// Tracker is a Client for the Tracker Network profile API. Calls go through a
// circuit breaker; there are no retries.
type Tracker struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Tracker) {
		t.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// WithName overrides the game name the client is registered under.
func WithName(name string) Option {
	return func(t *Tracker) {
		t.name = name
	}
}

// NewTracker creates a Tracker client.
func NewTracker(cfg Config, opts ...Option) *Tracker {
	t := &Tracker{
		name:       TrackerName,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	threshold := uint32(5)
	if cfg.BreakerThreshold > 0 {
		threshold = uint32(cfg.BreakerThreshold)
	}

	t.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        t.name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Unknown players are answers, not outages
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			t.logger.Warn("Provider circuit breaker state change",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			t.metrics.ObserveBreaker(name, from.String(), to.String())
		},
	})

	return t
}

// Name returns the game name.
func (t *Tracker) Name() string {
	return t.name
}

// State returns the breaker state (closed, half-open, open).
func (t *Tracker) State() string {
	return t.breaker.State().String()
}

// Profile fetches the profile of username on platform.
func (t *Tracker) Profile(ctx context.Context, platform, username string) (*Profile, error) {
	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.fetch(ctx, platform, username)
	})
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, ErrNotFound):
			outcome = "not_found"
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			outcome = "rejected"
			err = fmt.Errorf("provider %s unavailable: %w", t.name, err)
		}
		t.metrics.ObserveProvider(t.name, outcome)
		return nil, err
	}

	t.metrics.ObserveProvider(t.name, "ok")
	return result.(*Profile), nil
}

func (t *Tracker) fetch(ctx context.Context, platform, username string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/profile/%s/%s", t.baseURL, url.PathEscape(platform), url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("TRN-Api-Key", t.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(body)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	t.logger.Debug("Fetched provider profile",
		zap.String("platform", platform),
		zap.String("username", username),
		zap.Int("bytes", len(body)),
	)

	return ParseProfile(body)
}
