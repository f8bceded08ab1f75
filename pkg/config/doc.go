// Package config handles configuration management for pkginit.
// It layers embedded TOML defaults, an optional user config file and
// PKGINIT_-prefixed environment variables with koanf.
package config
