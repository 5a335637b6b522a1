// Package truth resolves which data source is authoritative for a metric and asset class.
//
// Each (metric, asset class) pair has an ordered source priority list. A user's
// override wins over the global default; when neither exists the resolver falls
// back to SYSTEM and logs a warning. Global defaults are seeded from YAML, and the
// package embeds a stock seed in defaults.yaml.
package truth
