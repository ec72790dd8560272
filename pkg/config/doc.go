// Package config loads and saves arkhamd configuration and seed roster
// files. Both formats are supported: YAML (.yaml, .yml) and JSON, detected
// by file extension. Seed roster files are additionally checked against an
// embedded JSON Schema before decoding, so malformed seed data fails with a
// precise location instead of a half-populated server.
package config
