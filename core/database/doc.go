// Package database handles the optional database holding stat alias overrides.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based
// on the application's configuration.
//
// # Overrides
//
// Two tables extend the built-in normalization tables without a redeploy:
//   - stat_aliases (label, field): cleaned provider label to canonical field id.
//   - stat_blacklist (field): canonical ids that are never returned.
//
// LoadOverrides reads both once at startup; the result is merged over the defaults
// of core/stats.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the database health check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	overrides, err := database.LoadOverrides(ctx, db)
//	n := stats.DefaultNormalizer().WithOverrides(overrides.Aliases, overrides.Blacklist)
package database
