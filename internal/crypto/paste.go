// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the encryption schemes a paste's content may be
// protected with: three classical AEAD ciphers, a plaintext passthrough,
// and one intentionally flawed
// post-quantum hybrid scheme. It mirrors the key-derivation and error
// semantics of the original service exactly, including the weaknesses it
// documents — this package does not attempt to harden either.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-keeper/models"
	"golang.org/x/crypto/chacha20poly1305"
)

// Service encrypts and decrypts paste content for the three classical
// AEAD algorithms plus the hybrid post-quantum scheme. The zero value is ready
// to use.
type Service struct{}

// NewService returns a ready-to-use Service.
func NewService() *Service {
	return &Service{}
}

// Encrypt produces a models.Content for the given algorithm. For
// AlgorithmNone it returns PlainContent(text) unchanged, and
// AlgorithmKyberHybridAes256GCM is handled by encryptHybrid. Every other
// algorithm derives key material from a freshly generated 16-byte salt and
// the supplied passphrase, then seals text with a random nonce.
func (s *Service) Encrypt(text, key string, algorithm models.EncryptionAlgorithm) (models.Content, error) {
	if algorithm == models.AlgorithmNone || algorithm == "" {
		return models.PlainContent(text), nil
	}

	if algorithm == models.AlgorithmKyberHybridAes256GCM {
		return encryptHybrid(text, key)
	}

	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.Content{}, fmt.Errorf("crypto: generate salt: %w", err)
	}
	derived := deriveKeyMaterial(key, salt)

	aead, nonceSize, err := newAEAD(algorithm, derived)
	if err != nil {
		return models.Content{}, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Content{}, fmt.Errorf("crypto: generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, []byte(text), nil)

	return models.Content{
		Kind:       models.ContentEncrypted,
		Algorithm:  algorithm,
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Decrypt recovers the plaintext of content. key may be empty only when
// content.Kind == ContentPlain.
func (s *Service) Decrypt(content models.Content, key string) (string, error) {
	if content.Kind == models.ContentPlain {
		return content.Text, nil
	}

	if key == "" {
		return "", ErrMissingKey
	}

	if content.Algorithm == models.AlgorithmKyberHybridAes256GCM {
		return decryptHybrid(content, key)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(content.Ciphertext)
	if err != nil {
		return "", ErrInvalidKey
	}
	nonce, err := base64.StdEncoding.DecodeString(content.Nonce)
	if err != nil {
		return "", ErrInvalidKey
	}
	salt, err := base64.StdEncoding.DecodeString(content.Salt)
	if err != nil {
		return "", ErrInvalidKey
	}

	derived := deriveKeyMaterial(key, salt)

	aead, nonceSize, err := newAEAD(content.Algorithm, derived)
	if err != nil {
		return "", ErrInvalidKey
	}
	if len(nonce) != nonceSize {
		return "", ErrInvalidKey
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidKey
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidKey
	}

	return string(plaintext), nil
}

// newAEAD constructs the cipher.AEAD for a classical algorithm and reports
// its expected nonce size.
func newAEAD(algorithm models.EncryptionAlgorithm, key []byte) (cipher.AEAD, int, error) {
	switch algorithm {
	case models.AlgorithmAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, 0, fmt.Errorf("crypto: aes cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, 0, fmt.Errorf("crypto: gcm: %w", err)
		}
		return gcm, gcm.NonceSize(), nil
	case models.AlgorithmChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, 0, fmt.Errorf("crypto: chacha20poly1305: %w", err)
		}
		return aead, aead.NonceSize(), nil
	case models.AlgorithmXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, 0, fmt.Errorf("crypto: xchacha20poly1305: %w", err)
		}
		return aead, aead.NonceSize(), nil
	default:
		return nil, 0, ErrUnsupportedAlgorithm
	}
}

// deriveKeyMaterial is the system's intentionally weak key derivation
// function: a single SHA-256 pass over salt‖passphrase. It is not a slow
// hash and performs no stretching; brute-forcing short passphrases offline
// is practical. This weakness is documented, not accidental — see
// SPEC_FULL.md §9 and DESIGN.md's Open Question #2.
func deriveKeyMaterial(key string, salt []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(key))
	sum := h.Sum(nil)
	return sum[:]
}
