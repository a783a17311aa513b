// Package config handles configuration loading, parsing, and validation
// from various sources (a .env file, environment variables, an optional YAML
// file). It provides type-safe access to the settings needed by the HTTP
// server and the generation client while keeping configuration details
// separate from request-handling code.
package config
