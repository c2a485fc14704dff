package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gamestats/core/stats"
)

var (
	// ErrNotFound indicates that the provider does not know the player.
	ErrNotFound = errors.New("player not found")
	// ErrUnknownMode indicates a mode missing from the mode table.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrNoSection indicates that the profile has no stats for the mode.
	ErrNoSection = errors.New("no stats for mode")
	// ErrUnknownProvider indicates a game with no registered client.
	ErrUnknownProvider = errors.New("unknown provider")
)

// notFoundMessage is the body error the provider reports for unknown players.
const notFoundMessage = "player not found"

// APIError is a provider failure reported in the status code or the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider error: %s", e.Message)
	}
	return fmt.Sprintf("provider error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client fetches player profiles from a stats provider.
type Client interface {
	// Name is the game the client serves (the :game route segment).
	Name() string
	// Profile fetches the full profile of a player.
	Profile(ctx context.Context, platform, username string) (*Profile, error)
}

// Profile is a provider response. Sections are kept raw so callers pick and
// decode only the mode they need.
type Profile struct {
	// Raw is the response body, used for caching and snapshots.
	Raw []byte
	// Fields holds the top-level members of the response.
	Fields map[string]json.RawMessage
	// Stats holds the members of the "stats" object, keyed by section key.
	Stats map[string]json.RawMessage
}

// Section is the raw stats of one mode.
type Section struct {
	Mode  string
	Key   string
	Shape stats.Shape
	Raw   json.RawMessage
}

// ParseProfile decodes a provider body. A body carrying an "error" member is
// returned as ErrNotFound or *APIError.
func ParseProfile(body []byte) (*Profile, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if fields == nil {
		return nil, &APIError{Message: "empty response"}
	}

	if rawErr, ok := fields["error"]; ok && !stats.IsEmpty(rawErr) {
		var msg string
		if err := json.Unmarshal(rawErr, &msg); err != nil {
			msg = string(rawErr)
		}
		if strings.EqualFold(strings.TrimSpace(msg), notFoundMessage) {
			return nil, ErrNotFound
		}
		return nil, &APIError{Message: msg}
	}

	p := &Profile{Raw: body, Fields: fields}
	if rawStats, ok := fields["stats"]; ok && !stats.IsEmpty(rawStats) {
		if err := json.Unmarshal(rawStats, &p.Stats); err != nil {
			return nil, fmt.Errorf("failed to decode profile stats: %w", err)
		}
	}
	return p, nil
}

// Section returns the stats of mode. The "all" mode reads a top-level array,
// every other mode reads an object under "stats".
func (p *Profile) Section(modes Modes, mode string) (*Section, error) {
	if mode == "" {
		mode = ModeAll
	}
	key, ok := modes.Key(mode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	s := &Section{Mode: strings.ToLower(mode), Key: key, Shape: stats.ShapeObject}
	source := p.Stats
	if s.Mode == ModeAll {
		s.Shape = stats.ShapeArray
		source = p.Fields
	}

	raw, ok := source[key]
	if !ok || stats.IsEmpty(raw) {
		return nil, fmt.Errorf("%w: %s", ErrNoSection, mode)
	}
	s.Raw = raw
	return s, nil
}
