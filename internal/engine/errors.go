// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import "errors"

// ErrStegoDigestMismatch is returned when a stego-wrapped paste's embedded
// payload no longer hashes to the PayloadDigest recorded at creation time
// — the carrier image was tampered with or truncated after embedding.
var ErrStegoDigestMismatch = errors.New("engine: extracted stego payload does not match recorded digest")
