// Package stats normalizes raw player statistics into canonical records.
//
// The provider reports stats in two shapes:
//   - Array: an ordered list of {key, value} pairs (the lifetime summary).
//   - Object: a map of stat id to {label, value, percentile, displayValue} (a single mode).
//
// A Normalizer turns either shape plus a Filter into an ordered list of Record values.
// Field names are cleaned ("Win%" becomes "wins_"), resolved through an alias table
// and checked against a blacklist. Values are parsed as numbers unless they look
// like durations or text.
//
// # Ordering
//
// TransformArray merges repeated fields by summing them and inserts newest first,
// anchoring new fields after "wins". TransformObject prepends records and places a
// requested percentile right after its base field. Under a wildcard filter the
// object result is sorted by field (see OrderingFor).
//
// # Usage
//
//	n := stats.DefaultNormalizer()
//	records := n.TransformArray(items, stats.ParseFilter("wins,kills"))
//
// Transforms are pure: they share no state between calls and can run concurrently.
package stats
