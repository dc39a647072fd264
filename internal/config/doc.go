// Package config loads service settings from environment variables, an
// optional .env file and an optional config.yaml, and validates them before
// any component is constructed.
package config
