// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "strings"

// TorConfig controls how the tor-scope gate resolves whether a request
// arrived over the configured onion service.
type TorConfig struct {
	// OnionHost is the canonical .onion hostname this deployment is served
	// on, compared case-insensitively. Empty disables exact-host matching
	// (only the ".onion" suffix check below still applies).
	OnionHost string

	// SuppressLogs, when true, asks callers to omit the resolved host from
	// access logs — onion hostnames are themselves sensitive.
	SuppressLogs bool
}

// IsOnionHost reports whether host satisfies cfg's tor-scope requirement:
// either it matches the configured onion host exactly (case-insensitive),
// or it carries the ".onion" TLD.
func (cfg TorConfig) IsOnionHost(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return false
	}
	if cfg.OnionHost != "" && host == strings.ToLower(cfg.OnionHost) {
		return true
	}
	return strings.HasSuffix(host, ".onion")
}

// RequestHost resolves the externally visible host for a request, a
// forwarded header taking precedence over the direct Host, matching how a
// service behind a reverse proxy or onion gateway is normally fronted.
func RequestHost(forwardedHost, directHost string) string {
	if forwardedHost != "" {
		return forwardedHost
	}
	return directHost
}
