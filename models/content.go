// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionAlgorithm selects the cipher used to protect a paste's content.
// None stores the plaintext verbatim; every other value is handled by
// internal/crypto.
type EncryptionAlgorithm string

const (
	AlgorithmNone                 EncryptionAlgorithm = "none"
	AlgorithmAES256GCM            EncryptionAlgorithm = "aes_256_gcm"
	AlgorithmChaCha20Poly1305     EncryptionAlgorithm = "chacha20_poly1305"
	AlgorithmXChaCha20Poly1305    EncryptionAlgorithm = "xchacha20_poly1305"
	AlgorithmKyberHybridAes256GCM EncryptionAlgorithm = "kyber_hybrid_aes_256_gcm"
)

// ContentKind discriminates the Content tagged union.
type ContentKind string

const (
	ContentPlain     ContentKind = "plain"
	ContentEncrypted ContentKind = "encrypted"
	ContentStego     ContentKind = "stego"
)

// Content is the tagged union stored alongside a Paste. Exactly one of the
// payload fields is populated, selected by Kind:
//
//   - ContentPlain: only Text is set.
//   - ContentEncrypted: Algorithm/Ciphertext/Nonce/Salt are set.
//   - ContentStego: Algorithm/Ciphertext/Nonce/Salt plus CarrierMIME,
//     CarrierImage and PayloadDigest are set — the encrypted bytes are the
//     steganographic payload embedded into CarrierImage.
type Content struct {
	Kind ContentKind `json:"kind"`

	// Text holds the plaintext body. Only meaningful when Kind == ContentPlain.
	Text string `json:"text,omitempty"`

	// Algorithm names the cipher used to produce Ciphertext. Meaningful for
	// ContentEncrypted and ContentStego.
	Algorithm EncryptionAlgorithm `json:"algorithm,omitempty"`

	// Ciphertext, Nonce and Salt are base64-encoded AEAD fields produced by
	// internal/crypto. For ContentStego, Ciphertext/Nonce/Salt describe the
	// *embedded payload*, not the image bytes.
	Ciphertext string `json:"ciphertext,omitempty"`
	Nonce      string `json:"nonce,omitempty"`
	Salt       string `json:"salt,omitempty"`

	// CarrierMIME is the MIME type of CarrierImage ("image/png").
	CarrierMIME string `json:"carrier_mime,omitempty"`

	// CarrierImage is the base64-encoded PNG carrier with the payload
	// embedded in its pixel LSBs.
	CarrierImage string `json:"carrier_image,omitempty"`

	// PayloadDigest is the lowercase hex SHA-256 of the embedded ciphertext,
	// recorded so a verifier can check extraction integrity without holding
	// the decryption key.
	PayloadDigest string `json:"payload_digest,omitempty"`
}

// PlainContent builds a Content of kind ContentPlain.
func PlainContent(text string) Content {
	return Content{Kind: ContentPlain, Text: text}
}

// AlgorithmOrNone reports the encryption algorithm backing c, or AlgorithmNone for
// plain content.
func (c Content) AlgorithmOrNone() EncryptionAlgorithm {
	if c.Kind == ContentPlain {
		return AlgorithmNone
	}
	return c.Algorithm
}
