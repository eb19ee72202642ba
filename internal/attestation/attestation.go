// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package attestation verifies the proof a reader presents before the gate
// evaluator allows decryption: either a TOTP code (RFC 6238) or a shared
// secret whose SHA-256 hash was recorded at creation time. Neither scheme
// uses a third-party OTP library — none exists anywhere in the example
// pack, so both are hand-rolled against the standard library, matching the
// original implementation's own approach.
package attestation

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // mandated by RFC 6238, not a security choice
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// Verdict is the outcome of checking a caller-supplied proof against an
// AttestationRequirement.
type Verdict struct {
	// Granted reports whether the proof verified.
	Granted bool

	// Invalid distinguishes "a proof was supplied but it was wrong" from
	// "no proof was supplied at all" when Granted is false. Callers use
	// this to decide between gate.ErrAttestationRequired and
	// gate.ErrAttestationInvalid.
	Invalid bool
}

// Clock returns the current time as RFC 6238's counter base. Tests may
// substitute a fixed value.
type Clock func() int64

// Verify checks query-supplied proof (code, shared-secret value) against
// req using now as the current Unix timestamp.
func Verify(req models.AttestationRequirement, code, sharedSecretValue string, now int64) Verdict {
	switch req.Kind {
	case models.AttestationTOTP:
		code = strings.TrimSpace(code)
		if code == "" {
			return Verdict{Granted: false, Invalid: false}
		}
		ok := verifyTOTP(req.Secret, code, totpDigits(req.Digits), totpStep(req.StepSeconds), totpDrift(req.AllowedDrift), now)
		return Verdict{Granted: ok, Invalid: !ok}

	case models.AttestationSharedSecret:
		provided := strings.TrimSpace(sharedSecretValue)
		if provided == "" {
			return Verdict{Granted: false, Invalid: false}
		}
		ok := hashSharedSecret(provided) == req.Hash
		return Verdict{Granted: ok, Invalid: !ok}

	default:
		return Verdict{Granted: true}
	}
}

func totpDigits(d int) int {
	if d == 0 {
		return 6
	}
	return d
}

func totpStep(s int) int {
	if s == 0 {
		return 30
	}
	return s
}

func totpDrift(d int) int {
	return d
}

// HashSharedSecret returns base64(SHA-256(secret)), the value recorded as
// AttestationRequirement.Hash at creation time.
func HashSharedSecret(secret string) string {
	return hashSharedSecret(secret)
}

func hashSharedSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// verifyTOTP checks code against the valid TOTP codes for secret within
// allowedDrift steps of now, matching RFC 6238 with HMAC-SHA1.
func verifyTOTP(secret, code string, digits, step, allowedDrift int, now int64) bool {
	secretBytes, ok := decodeTOTPSecret(secret)
	if !ok {
		return false
	}

	sanitized := sanitizeDigits(code)
	if len(sanitized) != digits {
		return false
	}

	if now < 0 {
		now = 0
	}
	counter := uint64(now) / uint64(step)

	for offset := -allowedDrift; offset <= allowedDrift; offset++ {
		var candidate uint64
		if offset < 0 {
			d := uint64(-offset)
			if d > counter {
				continue
			}
			candidate = counter - d
		} else {
			candidate = counter + uint64(offset)
		}

		want, ok := totpCode(secretBytes, candidate, digits)
		if ok && want == sanitized {
			return true
		}
	}
	return false
}

func sanitizeDigits(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func decodeTOTPSecret(secret string) ([]byte, bool) {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(secret), ""))
	if cleaned == "" {
		return nil, false
	}
	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(cleaned)
	if err != nil {
		decoded, err = base32.StdEncoding.DecodeString(cleaned)
		if err != nil {
			return nil, false
		}
	}
	return decoded, true
}

// totpCode computes the HOTP value for secret at counter, per RFC 4226's
// dynamic truncation.
func totpCode(secret []byte, counter uint64, digits int) (string, bool) {
	if digits < 1 || digits > 10 {
		return "", false
	}

	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	mac := hmac.New(sha1.New, secret)
	mac.Write(counterBytes[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	binCode := (uint32(sum[offset]&0x7f) << 24) |
		(uint32(sum[offset+1]) << 16) |
		(uint32(sum[offset+2]) << 8) |
		uint32(sum[offset+3])

	mod := uint32(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}
	value := binCode % mod

	return fmt.Sprintf("%0*d", digits, value), true
}
