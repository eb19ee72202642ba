// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pastestore

import (
	"time"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// Stats aggregates the current contents of the in-memory map into a
// models.StoreStats snapshot. It does not consult the backing adapter —
// only pastes currently resident in memory are counted, matching the
// original implementation's single-pass-over-the-map approach.
func (s *Store) Stats() models.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := models.StoreStats{}

	formatCounts := make(map[models.PasteFormat]int64)
	algorithmCounts := make(map[models.EncryptionAlgorithm]int64)
	dayCounts := make(map[string]int64)

	for _, paste := range s.entries {
		stats.TotalPastes++

		if paste.IsExpired(now) {
			stats.ExpiredPastes++
		} else {
			stats.ActivePastes++
		}

		if paste.BurnAfterReading {
			stats.BurnAfterReadingCount++
		}
		if paste.Metadata.NotBefore != nil || paste.Metadata.NotAfter != nil {
			stats.TimeLockedCount++
		}

		formatCounts[paste.Format]++
		algorithmCounts[paste.Content.AlgorithmOrNone()]++
		dayCounts[dayKey(paste.CreatedAt)]++
	}

	for format, count := range formatCounts {
		stats.Formats = append(stats.Formats, models.FormatUsage{Format: format, Count: count})
	}
	for algorithm, count := range algorithmCounts {
		stats.EncryptionUsage = append(stats.EncryptionUsage, models.EncryptionUsage{Algorithm: algorithm, Count: count})
	}
	for day, count := range dayCounts {
		stats.CreatedByDay = append(stats.CreatedByDay, models.DailyCount{Day: day, Count: count})
	}

	return stats
}

func dayKey(createdAt int64) string {
	return time.Unix(createdAt, 0).UTC().Format("2006-01-02")
}
