// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stego implements least-significant-bit steganography: embedding
// and extracting a byte payload in the red/green/blue channels of an RGBA
// image, plus a handful of procedurally generated carrier images. No
// third-party image codec appears anywhere in the example pack, so this
// package is built entirely on the standard library's image/image/png
// packages — matching the original implementation's own choice to hand
// roll pixel manipulation rather than pull in an imaging crate.
package stego

import "strings"

// ParseDataURI splits a "data:<mime>;base64,<payload>" string into its MIME
// type and raw (still base64-encoded) payload. It requires the "data:"
// prefix and a ";base64" suffix on the metadata segment; anything else is
// rejected as a malformed data URI.
func ParseDataURI(input string) (mime string, data string, err error) {
	const prefix = "data:"
	if !strings.HasPrefix(input, prefix) {
		return "", "", &ErrInvalidDataURI{Detail: "missing data: prefix"}
	}
	rest := input[len(prefix):]

	idx := strings.IndexByte(rest, ',')
	if idx < 0 {
		return "", "", &ErrInvalidDataURI{Detail: "missing comma separator"}
	}
	meta, data := rest[:idx], rest[idx+1:]

	const b64Suffix = ";base64"
	if !strings.HasSuffix(meta, b64Suffix) {
		return "", "", &ErrInvalidDataURI{Detail: "expected ;base64 encoding"}
	}
	mime = strings.TrimSuffix(meta, b64Suffix)
	if mime == "" {
		return "", "", &ErrInvalidDataURI{Detail: "missing mime type"}
	}

	return mime, data, nil
}
