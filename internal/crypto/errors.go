// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by Service.Decrypt. Callers match them with
// [errors.Is]; every lower-level failure (bad base64, wrong nonce length,
// AEAD tag mismatch, invalid UTF-8 plaintext) coalesces into ErrInvalidKey
// so a caller cannot distinguish "wrong key" from "corrupted ciphertext".
var (
	// ErrMissingKey is returned when content requires a key but none was
	// supplied.
	ErrMissingKey = errors.New("crypto: key required to decrypt this content")

	// ErrInvalidKey is returned for every other decryption failure: wrong
	// passphrase, tampered ciphertext, or a malformed stored blob.
	ErrInvalidKey = errors.New("crypto: key does not decrypt this content")

	// ErrUnsupportedAlgorithm is returned by Encrypt for an algorithm value
	// the service does not recognize.
	ErrUnsupportedAlgorithm = errors.New("crypto: unsupported encryption algorithm")
)
