// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/cloudflare/circl/kem/kyber/kyber768"
)

// hybridFieldCount is the number of pipe-separated base64 fields in a
// KyberHybridAes256Gcm stored blob: PQ ciphertext, PQ public key, AES
// ciphertext, AES nonce, PQ private key — in that order.
const hybridFieldCount = 5

// encryptHybrid implements the KyberHybridAes256Gcm scheme. It performs a
// real Kyber768 key-generation and encapsulation, then folds the (much
// larger) Kyber byte strings down to 32 bytes each via SHA-256 so the
// stored blob keeps exactly five base64 fields. The AES key is derived not
// from the genuine KEM shared secret but from the passphrase and
// SHA-256(priv‖nonce) — the same formula Decrypt uses to recover it. That
// means the real encapsulated secret (discarded below) plays no part in
// recovering the plaintext: anyone who can read the stored private-key
// field and knows the passphrase can derive the AES key without ever
// performing a KEM decapsulation. This is the scheme's documented
// flaw, reproduced intentionally — see SPEC_FULL.md §4.1 and §9.
func encryptHybrid(text, key string) (models.Content, error) {
	scheme := kyber768.Scheme()

	pub, priv, err := scheme.GenerateKeyPair()
	if err != nil {
		return models.Content{}, fmt.Errorf("crypto: kyber keygen: %w", err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return models.Content{}, fmt.Errorf("crypto: marshal kyber public key: %w", err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return models.Content{}, fmt.Errorf("crypto: marshal kyber private key: %w", err)
	}

	ct, _, err := scheme.Encapsulate(pub)
	if err != nil {
		return models.Content{}, fmt.Errorf("crypto: kyber encapsulate: %w", err)
	}

	foldedCT := fold32(ct)
	foldedPub := fold32(pubBytes)
	foldedPriv := fold32(privBytes)

	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Content{}, fmt.Errorf("crypto: generate nonce: %w", err)
	}

	kemSharedSecret := kemSecretFromPrivAndNonce(foldedPriv, nonce)
	aesKey := deriveKeyMaterial(key, kemSharedSecret)

	aead, err := newAESGCM(aesKey)
	if err != nil {
		return models.Content{}, err
	}
	aesCiphertext := aead.Seal(nil, nonce, []byte(text), nil)

	blob := strings.Join([]string{
		b64(foldedCT[:]),
		b64(foldedPub[:]),
		b64(aesCiphertext),
		b64(nonce),
		b64(foldedPriv[:]),
	}, "|")

	return models.Content{
		Kind:       models.ContentEncrypted,
		Algorithm:  models.AlgorithmKyberHybridAes256GCM,
		Ciphertext: blob,
	}, nil
}

// decryptHybrid reverses encryptHybrid. It never calls scheme.Decapsulate:
// the stored private-key field is all it needs to rederive the AES key,
// which is exactly the weakness the scheme documents.
func decryptHybrid(content models.Content, key string) (string, error) {
	fields := strings.Split(content.Ciphertext, "|")
	if len(fields) != hybridFieldCount {
		return "", ErrInvalidKey
	}

	aesCiphertext, err := base64.StdEncoding.DecodeString(fields[2])
	if err != nil {
		return "", ErrInvalidKey
	}
	nonce, err := base64.StdEncoding.DecodeString(fields[3])
	if err != nil {
		return "", ErrInvalidKey
	}
	foldedPriv, err := base64.StdEncoding.DecodeString(fields[4])
	if err != nil || len(foldedPriv) != 32 {
		return "", ErrInvalidKey
	}
	if len(nonce) != 12 {
		return "", ErrInvalidKey
	}

	kemSharedSecret := kemSecretFromPrivAndNonce([32]byte(foldedPriv), nonce)
	aesKey := deriveKeyMaterial(key, kemSharedSecret)

	aead, err := newAESGCM(aesKey)
	if err != nil {
		return "", ErrInvalidKey
	}

	plaintext, err := aead.Open(nil, nonce, aesCiphertext, nil)
	if err != nil {
		return "", ErrInvalidKey
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidKey
	}

	return string(plaintext), nil
}

func kemSecretFromPrivAndNonce(foldedPriv [32]byte, nonce []byte) []byte {
	h := sha256.New()
	h.Write(foldedPriv[:])
	h.Write(nonce)
	return h.Sum(nil)
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: aes cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func fold32(b []byte) [32]byte {
	return sha256.Sum256(b)
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
