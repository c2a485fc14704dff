// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its own routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registered features. It handles:
//   - Registration via Register(), rejecting duplicate names
//   - Loading of enabled features via LoadAll(), in registration order
//
// Features such as 'stats', 'snapshots' and 'health' are developed and tested in
// isolation and wired together in cmd/start.go.
package loader
