package checks

import (
	"fmt"
	"strings"

	"gamestats/core/provider"
)

// stater is implemented by clients guarded by a circuit breaker.
type stater interface {
	State() string
}

// CheckProviders reports the breaker state of every registered provider. An open
// breaker fails the check.
func CheckProviders(reg *provider.Registry) Result {
	if reg == nil {
		return disabled()
	}

	states := make(map[string]any)
	var open []string
	for _, name := range reg.Names() {
		client, err := reg.Get(name)
		if err != nil {
			return failed(err, nil)
		}
		s, ok := client.(stater)
		if !ok {
			states[name] = "unknown"
			continue
		}
		state := s.State()
		states[name] = state
		if state == "open" {
			open = append(open, name)
		}
	}

	details := map[string]any{"breakers": states}
	if len(open) > 0 {
		return failed(fmt.Errorf("circuit open for %s", strings.Join(open, ", ")), details)
	}
	return ok(details)
}
