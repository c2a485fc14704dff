// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query) protecting endpoints.
//   - rayid: assigns a ray id to every request, stored in the Fiber locals for
//     logger.WithRayID and echoed in the X-Ray-ID response header.
//
// Request logging lives in the logger package (logger.Middleware).
package middleware
