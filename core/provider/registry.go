package provider

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps game names to provider clients.
type Registry struct {
	clients map[string]Client
}

// NewRegistry creates a registry holding clients.
func NewRegistry(clients ...Client) (*Registry, error) {
	r := &Registry{clients: make(map[string]Client)}
	for _, c := range clients {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a client under its name.
func (r *Registry) Register(c Client) error {
	name := strings.ToLower(c.Name())
	if _, exists := r.clients[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.clients[name] = c
	return nil
}

// Get returns the client for game.
func (r *Registry) Get(game string) (Client, error) {
	c, ok := r.clients[strings.ToLower(game)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, game)
	}
	return c, nil
}

// Names returns the registered games, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
