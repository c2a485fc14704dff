// Package playerstats implements the player stats feature.
//
// It fetches a player profile from the provider registered for the game, caches the
// raw response, selects the section of the requested mode and normalizes it with
// core/stats.
//
// # Components
//
//   - Service: Fetch (through the cache), archive, section selection and transform.
//   - Handler: HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /api/:game/:platform/:username/:mode? : Normalized records. Query 'fields'
//     (default '*') and 'refresh'.
//   - GET /api/:game/raw/:platform/:username/:mode? : The raw provider section.
//
// Unknown players, unknown modes and missing sections return 200 with an empty list.
// Provider and decode failures return 500 with {"error": message}.
package playerstats
