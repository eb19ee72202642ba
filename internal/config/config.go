// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// copypaste server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide, non-subsystem settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP transport's address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Persistence selects and configures the PersistenceAdapter a paste is
	// shadowed to.
	Persistence Persistence

	// Tor configures the tor-scope gate.
	Tor Tor

	// Anchor configures the blockchain anchor relayer.
	Anchor Anchor

	// Verifier configures the best-effort cryptographic verifier
	// side-channel.
	Verifier Verifier

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Persistence selects the default PersistenceAdapter every paste is
// shadowed to, unless overridden per-paste by a PersistenceLocator.
type Persistence struct {
	// Backend selects the adapter: "memory", "vault", "redis", "s3", or
	// "postgres". Empty defaults to "memory".
	// Env: COPYPASTE_PERSISTENCE_BACKEND
	Backend string `env:"COPYPASTE_PERSISTENCE_BACKEND"`

	VaultAddr      string `env:"COPYPASTE_VAULT_ADDR"`
	VaultToken     string `env:"COPYPASTE_VAULT_TOKEN"`
	VaultMount     string `env:"COPYPASTE_VAULT_MOUNT"`
	VaultNamespace string `env:"COPYPASTE_VAULT_NAMESPACE"`
	VaultPrefix    string `env:"COPYPASTE_VAULT_PREFIX"`

	RedisBaseURL  string `env:"UPSTASH_REDIS_REST_URL"`
	RedisToken    string `env:"UPSTASH_REDIS_REST_TOKEN"`
	RedisKeyPrefix string `env:"COPYPASTE_REDIS_KEY_PREFIX" envDefault:"paste:"`

	S3Endpoint  string `env:"COPYPASTE_S3_ENDPOINT"`
	S3Bucket    string `env:"COPYPASTE_S3_BUCKET"`
	S3Prefix    string `env:"COPYPASTE_S3_PREFIX"`
	S3AccessKey string `env:"COPYPASTE_S3_ACCESS_KEY"`
	S3SecretKey string `env:"COPYPASTE_S3_SECRET_KEY"`

	PostgresDSN string `env:"COPYPASTE_POSTGRES_DSN"`
}

// Tor configures the gate's tor-scope check.
type Tor struct {
	// OnionHost is the canonical .onion hostname this deployment is served
	// on.
	// Env: COPYPASTE_ONION_HOST
	OnionHost string `env:"COPYPASTE_ONION_HOST"`

	// SuppressLogs asks handlers to omit the resolved host from access
	// logs.
	// Env: COPYPASTE_TOR_SUPPRESS_LOGS
	SuppressLogs bool `env:"COPYPASTE_TOR_SUPPRESS_LOGS"`
}

// Anchor configures outbound submission to the blockchain anchor relayer.
type Anchor struct {
	// RelayEndpoint is the HTTP endpoint anchor payloads are POSTed to.
	// Empty selects the NoopRelayer.
	// Env: ANCHOR_RELAY_ENDPOINT
	RelayEndpoint string `env:"ANCHOR_RELAY_ENDPOINT"`

	// RelayAPIKey is sent as a bearer token on anchor relay requests.
	// Env: ANCHOR_RELAY_API_KEY
	RelayAPIKey string `env:"ANCHOR_RELAY_API_KEY"`
}

// Verifier configures the best-effort cryptographic verifier side-channel.
type Verifier struct {
	// URL is the endpoint anchor hashes are posted to for out-of-process
	// verification. Empty disables verifier submission entirely.
	// Env: CRYPTO_VERIFIER_URL
	URL string `env:"CRYPTO_VERIFIER_URL"`
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
