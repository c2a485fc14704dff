// Package provider fetches raw player profiles from third-party stats providers.
//
// A Client returns a Profile whose sections stay raw JSON; Profile.Section picks
// the section for a mode using the configured Modes table:
//
//	all   -> top-level "lifeTimeStats" (array shape)
//	solo  -> stats.p2  (object shape)
//	duo   -> stats.p10 (object shape)
//	squad -> stats.p9  (object shape)
//
// Tracker is the Tracker Network client. Every call goes through a sony/gobreaker
// circuit breaker that opens after BreakerThreshold consecutive failures. Unknown
// players (HTTP 404 or a "Player Not Found" body error) surface as ErrNotFound and do
// not count as failures.
//
// Registry maps game names (the :game route segment) to clients and is filled
// explicitly at startup.
package provider
