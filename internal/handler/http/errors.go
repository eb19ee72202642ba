// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrBadRequest is returned by handlers for malformed request bodies or
// query parameters that do not map to a more specific domain sentinel.
var ErrBadRequest = errors.New("http: bad request")
