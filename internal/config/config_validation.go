// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Persistence.Backend {
	case "", "memory":
		// Memory requires nothing further.
	case "vault":
		if cfg.Persistence.VaultAddr == "" || cfg.Persistence.VaultToken == "" {
			return ErrInvalidPersistenceConfig
		}
	case "redis":
		if cfg.Persistence.RedisBaseURL == "" || cfg.Persistence.RedisToken == "" {
			return ErrInvalidPersistenceConfig
		}
	case "s3":
		if cfg.Persistence.S3Endpoint == "" || cfg.Persistence.S3Bucket == "" {
			return ErrInvalidPersistenceConfig
		}
	case "postgres":
		if cfg.Persistence.PostgresDSN == "" {
			return ErrInvalidPersistenceConfig
		}
	default:
		return ErrUnknownPersistenceBackend
	}

	return nil
}
