// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import "errors"

// ErrEncryptionRequired is returned when a caller attempts to create a
// bundle (non-empty children list) without a non-None encryption
// algorithm and a key. Children always inherit the parent's algorithm and
// key, so there is nothing to derive theirs from otherwise.
var ErrEncryptionRequired = errors.New("bundle: creating a bundle requires a non-zero encryption algorithm and key")
