// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package timelock parses the timestamps used by a paste's optional
// not_before/not_after window and evaluates whether that window currently
// permits a read.
package timelock

import (
	"fmt"
	"strconv"
	"time"
)

// State describes why a time-locked paste currently cannot be read.
type State int

const (
	// Open means no lock applies, or the current time satisfies it.
	Open State = iota
	// TooEarly means now < not_before.
	TooEarly
	// TooLate means now > not_after.
	TooLate
)

// Now returns the current Unix timestamp in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// ParseTimestamp accepts either a bare Unix-seconds integer or an RFC 3339
// timestamp and returns the Unix-seconds value. It returns an error for
// anything else.
func ParseTimestamp(input string) (int64, error) {
	if n, err := strconv.ParseInt(input, 10, 64); err == nil {
		return n, nil
	}
	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return 0, fmt.Errorf("timelock: expected unix seconds or RFC3339 timestamp: %w", err)
	}
	return t.Unix(), nil
}

// FormatTimestamp renders ts as "2006-01-02 15:04:05 UTC".
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// Evaluate checks now against the optional notBefore/notAfter bounds.
// notBefore is checked first: a paste that is both not-yet-open and
// already past its end (a misconfigured, inverted window) reports
// TooEarly, matching the original implementation's precedence.
func Evaluate(notBefore, notAfter *int64, now int64) State {
	if notBefore != nil && now < *notBefore {
		return TooEarly
	}
	if notAfter != nil && now > *notAfter {
		return TooLate
	}
	return Open
}
