// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import "errors"

// Sentinel errors returned by Adapter implementations. A caller matches
// them with [errors.Is]; the underlying cause is always wrapped in.
var (
	ErrSave   = errors.New("persistence: save failed")
	ErrLoad   = errors.New("persistence: load failed")
	ErrDelete = errors.New("persistence: delete failed")
)
