// Package health reports the state of the service dependencies.
//
// # Checks Provided
//
//   - storage: the snapshot bucket exists (disabled when snapshots are off).
//   - database: the override database answers a ping and the override tables have
//     the expected columns (disabled without a database).
//   - cache: a probe value survives a set/get/delete round trip.
//   - provider: no provider circuit breaker is open.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks. 200 when healthy, 503 otherwise.
package health
