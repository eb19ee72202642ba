// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the JSON-specific representation of the application
// configuration. It mirrors [StructuredConfig] but uses JSON struct tags and
// the custom [Duration] type so that duration values can be expressed as
// human-readable strings (e.g. "1h", "30s") in the config file.
//
// After decoding, the values are mapped into a [StructuredConfig] by
// [parseJSON].
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Persistence struct {
		Backend        string `json:"backend"`
		VaultAddr      string `json:"vault_addr"`
		VaultToken     string `json:"vault_token"`
		VaultMount     string `json:"vault_mount"`
		VaultNamespace string `json:"vault_namespace"`
		VaultPrefix    string `json:"vault_prefix"`
		RedisBaseURL   string `json:"redis_base_url"`
		RedisToken     string `json:"redis_token"`
		RedisKeyPrefix string `json:"redis_key_prefix"`
		S3Endpoint     string `json:"s3_endpoint"`
		S3Bucket       string `json:"s3_bucket"`
		S3Prefix       string `json:"s3_prefix"`
		S3AccessKey    string `json:"s3_access_key"`
		S3SecretKey    string `json:"s3_secret_key"`
		PostgresDSN    string `json:"postgres_dsn"`
	} `json:"persistence,omitempty"`

	Tor struct {
		OnionHost    string `json:"onion_host"`
		SuppressLogs bool   `json:"suppress_logs"`
	} `json:"tor,omitempty"`

	Anchor struct {
		RelayEndpoint string `json:"relay_endpoint"`
		RelayAPIKey   string `json:"relay_api_key"`
	} `json:"anchor,omitempty"`

	Verifier struct {
		URL string `json:"url"`
	} `json:"verifier,omitempty"`
}

// parseJSON opens the JSON file at jsonFilePath, decodes it into a
// [StructuredJSONConfig], and maps the result into a [StructuredConfig].
//
// JSONFilePath is intentionally left empty in the returned config so that
// the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Persistence: Persistence{
			Backend:        jsonCfg.Persistence.Backend,
			VaultAddr:      jsonCfg.Persistence.VaultAddr,
			VaultToken:     jsonCfg.Persistence.VaultToken,
			VaultMount:     jsonCfg.Persistence.VaultMount,
			VaultNamespace: jsonCfg.Persistence.VaultNamespace,
			VaultPrefix:    jsonCfg.Persistence.VaultPrefix,
			RedisBaseURL:   jsonCfg.Persistence.RedisBaseURL,
			RedisToken:     jsonCfg.Persistence.RedisToken,
			RedisKeyPrefix: jsonCfg.Persistence.RedisKeyPrefix,
			S3Endpoint:     jsonCfg.Persistence.S3Endpoint,
			S3Bucket:       jsonCfg.Persistence.S3Bucket,
			S3Prefix:       jsonCfg.Persistence.S3Prefix,
			S3AccessKey:    jsonCfg.Persistence.S3AccessKey,
			S3SecretKey:    jsonCfg.Persistence.S3SecretKey,
			PostgresDSN:    jsonCfg.Persistence.PostgresDSN,
		},
		Tor: Tor{
			OnionHost:    jsonCfg.Tor.OnionHost,
			SuppressLogs: jsonCfg.Tor.SuppressLogs,
		},
		Anchor: Anchor{
			RelayEndpoint: jsonCfg.Anchor.RelayEndpoint,
			RelayAPIKey:   jsonCfg.Anchor.RelayAPIKey,
		},
		Verifier: Verifier{
			URL: jsonCfg.Verifier.URL,
		},
		JSONFilePath: "", // intentionally cleared to prevent re-processing
	}

	return cfg, nil
}

// Duration is a thin wrapper around [time.Duration] that adds JSON
// unmarshaling support for human-readable duration strings such as "1h",
// "30m", or "15s", in addition to raw nanosecond integers.
//
// Use Duration in JSON config structs wherever a time.Duration field is
// needed. Convert back to time.Duration with a simple cast:
//
//	d := Duration(5 * time.Minute)
//	std := time.Duration(d) // → 5m0s
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler] for Duration.
//
// Supported JSON value types:
//   - string: parsed with [time.ParseDuration] (e.g. "1h30m", "30s").
//   - number: treated as a raw nanosecond count (same as time.Duration).
//
// Returns an error if the value is a string that cannot be parsed as a
// duration, or if the JSON value is of an unsupported type.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// MarshalJSON implements [json.Marshaler] for Duration.
// The value is serialized as a human-readable string using
// [time.Duration.String] (e.g. "1h0m0s", "30m0s").
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
