// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package anchor

import "errors"

// ErrRelayFailed wraps a non-2xx or transport-level failure from an
// AnchorRelayer. It is returned from Service.Anchor so the HTTP layer can
// map it to a 502, but it is never returned from background verifier
// dispatch, which is best-effort only.
var ErrRelayFailed = errors.New("anchor: relay request failed")
