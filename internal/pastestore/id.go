// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pastestore

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// adjectives and nouns are the fixed ten-word pools generateID combines
// into "{adjective}-{noun}-{10..99}" identifiers, matching the original
// implementation's PASTE_ID_ADJECTIVES/PASTE_ID_NOUNS tables.
var (
	adjectives = [10]string{
		"stellar", "quantum", "luminous", "neon", "orbital",
		"cosmic", "radiant", "sonic", "velvet", "ember",
	}
	nouns = [10]string{
		"otter", "phoenix", "nebula", "cipher", "comet",
		"matrix", "falcon", "vertex", "galaxy", "aurora",
	}
)

const idGenerationRetries = 12
const fallbackIDLength = 10

// generateID produces a new paste id that does not already appear in
// taken. It tries up to idGenerationRetries random
// "{adjective}-{noun}-{number}" combinations before falling back to a
// random alphanumeric string, matching the original's retry-then-nanoid
// behaviour.
func generateID(taken func(id string) bool) (string, error) {
	for i := 0; i < idGenerationRetries; i++ {
		adj, err := randomElement(adjectives[:])
		if err != nil {
			return "", err
		}
		noun, err := randomElement(nouns[:])
		if err != nil {
			return "", err
		}
		n, err := randomInt(10, 100)
		if err != nil {
			return "", err
		}

		candidate := fmt.Sprintf("%s-%s-%d", adj, noun, n)
		if !taken(candidate) {
			return candidate, nil
		}
	}

	return randomAlphanumeric(fallbackIDLength)
}

func randomElement(pool []string) (string, error) {
	n, err := randomInt(0, len(pool))
	if err != nil {
		return "", err
	}
	return pool[n], nil
}

// randomInt returns a cryptographically random integer in [min, max).
func randomInt(min, max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		return 0, fmt.Errorf("pastestore: generate random int: %w", err)
	}
	return min + int(n.Int64()), nil
}

const alphanumericAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomAlphanumeric(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		idx, err := randomInt(0, len(alphanumericAlphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphanumericAlphabet[idx]
	}
	return string(out), nil
}
