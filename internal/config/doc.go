// Package config loads and validates the application configuration.
//
// Values are merged from four sources in priority order: environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults. The merged result is validated once at startup; configuration
// problems (such as a missing token signing key) terminate the process
// before it starts serving requests.
package config
