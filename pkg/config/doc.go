// Package config loads env-tagged configuration structs, reading an
// optional .env file first. Per-package Config types (trial.Config,
// pg.Config) define their own tags and defaults; this package just parses.
package config
