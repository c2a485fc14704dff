package checks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"gamestats/core/cache"
)

const probeKey = "health:probe"

// CheckCache writes, reads back and deletes a probe value.
func CheckCache(ctx context.Context, c cache.Cache) Result {
	if c == nil || c.Name() == cache.DriverNone {
		return disabled()
	}

	details := map[string]any{"backend": c.Name()}
	probe := []byte(time.Now().UTC().Format(time.RFC3339Nano))

	if err := c.Set(ctx, probeKey, probe, 10*time.Second); err != nil {
		return failed(err, details)
	}
	got, err := c.Get(ctx, probeKey)
	if errors.Is(err, cache.ErrMiss) {
		return failed(fmt.Errorf("probe value was not stored"), details)
	}
	if err != nil {
		return failed(err, details)
	}
	if !bytes.Equal(got, probe) {
		return failed(fmt.Errorf("probe value mismatch"), details)
	}
	if err := c.Delete(ctx, probeKey); err != nil {
		return failed(err, details)
	}
	return ok(details)
}
