// Package snapshots archives raw provider responses to object storage (S3, MinIO).
//
// Every profile fetched from a provider (a cache miss) is stored as
//
//	{prefix}/{game}/{platform}/{username}/{unix-nanos}.json
//
// and the oldest snapshots beyond the retention limit are removed. Archive failures
// are logged by the caller and never fail a stats request.
//
// # HTTP Endpoints
//
//   - GET /snapshots/:game/:platform/:username : List snapshots, newest first.
//   - GET /snapshots/:game/:platform/:username/:id : Raw body of one snapshot.
package snapshots
