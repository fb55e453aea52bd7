// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// levelkeeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing settings used by the reference backend.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the persistence backends: the
	// client-side SQLite cache and the server-side database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the backend
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote endpoint settings used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the sync engine tunables (intervals, throttle, batching).
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle settings for the reference backend.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server-side database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the client-side persistent cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the server-side database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name used by the reference
	// backend. When empty the backend falls back to its in-memory
	// repositories.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds settings for the client-side persistent store.
type Cache struct {
	// Path is the SQLite database file path for the client content and
	// progress cache (e.g. "levelkeeper.db"). If the file cannot be
	// opened the store degrades to a non-durable in-memory implementation.
	// Env: STORAGE_CACHE_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the backend HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ContentSeedPath is an optional JSON file the backend loads its
	// content catalog from at startup. When empty a built-in sample
	// catalog is served.
	// Env: SERVER_CONTENT_SEED_PATH
	ContentSeedPath string `env:"CONTENT_SEED_PATH"`
}

// Adapter holds the remote endpoint settings used by the client transport.
type Adapter struct {
	// HTTPAddress is the base URL of the remote content/progress service
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the sync engine tunables.
type Sync struct {
	// Interval is the periodic sync tick (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Throttle is the minimum time between two non-forced sync passes.
	// Env: SYNC_THROTTLE
	Throttle time.Duration `env:"THROTTLE"`

	// BatchSize bounds how many entity payload fetches run concurrently
	// within one content-fetch pass. Not a correctness property.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
