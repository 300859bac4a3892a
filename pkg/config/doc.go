// Package config handles configuration management for ride.
// It layers built-in defaults, user and project TOML files, an explicit
// config file and RIDE_* environment variables.
package config
