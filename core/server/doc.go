// Package server holds the HTTP server configuration.
//
// While cmd/start.go handles the server startup, this package defines the
// configuration structure and its validation: the listen port, the API key
// protecting every route, and whether the Swagger UI is served.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber and the auth middleware.
package server
