// Package utils provides small helpers shared by features: query value parsing and
// sanitizing of cache keys and object names.
package utils
