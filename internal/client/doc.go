// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires a terminal UI onto a small resty-backed HTTP client for the
// copypaste API, giving an operator a way to create, browse, and view
// pastes against a running server without hand-writing curl commands.
package client
