// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Paste is the persisted unit of the system: a piece of content plus the
// metadata that governs how and whether it may be read.
type Paste struct {
	ID               string      `json:"id"`
	Content          Content     `json:"content"`
	Format           PasteFormat `json:"format"`
	CreatedAt        int64       `json:"created_at"`
	ExpiresAt        *int64      `json:"expires_at,omitempty"`
	BurnAfterReading bool        `json:"burn_after_reading"`
	Metadata         Metadata    `json:"metadata"`
}

// IsExpired reports whether p's TTL has elapsed as of now (Unix seconds).
func (p Paste) IsExpired(now int64) bool {
	return p.ExpiresAt != nil && now > *p.ExpiresAt
}

// FormatUsage is one row of the per-format breakdown in StoreStats.
type FormatUsage struct {
	Format PasteFormat `json:"format"`
	Count  int64       `json:"count"`
}

// EncryptionUsage is one row of the per-algorithm breakdown in StoreStats.
type EncryptionUsage struct {
	Algorithm EncryptionAlgorithm `json:"algorithm"`
	Count     int64               `json:"count"`
}

// DailyCount is one row of the created-by-day breakdown in StoreStats.
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// StoreStats summarizes the current contents of the paste store. JSON
// fields are camelCase, matching the external stats API response shape.
type StoreStats struct {
	TotalPastes          int64             `json:"totalPastes"`
	ActivePastes         int64             `json:"activePastes"`
	ExpiredPastes        int64             `json:"expiredPastes"`
	BurnAfterReadingCount int64            `json:"burnAfterReadingCount"`
	TimeLockedCount      int64             `json:"timeLockedCount"`
	Formats              []FormatUsage     `json:"formats"`
	EncryptionUsage      []EncryptionUsage `json:"encryptionUsage"`
	CreatedByDay         []DailyCount      `json:"createdByDay"`
}
