// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the server and time slot settings while keeping configuration
// details separate from the calendar logic.
package config
