// Package config loads server, database, CORS, rate limit and metrics
// settings from an optional config.yaml and APIARY_-prefixed environment
// variables, then validates them with struct tags.
package config
