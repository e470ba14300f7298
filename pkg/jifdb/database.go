package jifdb

import (
	"sort"
	"strings"

	"github.com/plasmalab/jifdb-go/pkg/jifdb/models"
)

// Insert applies the merge policy: a record replaces an existing entry for
// the same journal only when its impact factor is strictly greater, so the
// best available data wins across sheets. The upper- and lower-case keys
// for a name always point at the same record. Returns whether the record
// was stored.
func Insert(db models.Database, rec *models.JournalRecord) bool {
	upper := strings.ToUpper(rec.OriginalName)
	lower := strings.ToLower(rec.OriginalName)

	if existing, ok := db[upper]; ok && rec.ImpactFactor <= existing.ImpactFactor {
		return false
	}
	db[upper] = rec
	db[lower] = rec
	return true
}

// FilterByImpactFactor drops records whose impact factor is 0. When every
// record would be dropped the input is returned unchanged, so a workbook
// without usable impact-factor data still yields output.
func FilterByImpactFactor(db models.Database) models.Database {
	filtered := make(models.Database, len(db))
	for key, rec := range db {
		if rec.ImpactFactor > 0 {
			filtered[key] = rec
		}
	}
	if len(filtered) == 0 {
		return db
	}
	return filtered
}

// Summary reports database statistics for console output.
type Summary struct {
	// UniqueJournals counts distinct journals, not lookup keys.
	UniqueJournals int
	// Samples holds up to the requested number of records with a positive
	// impact factor, ordered by name.
	Samples []*models.JournalRecord
}

// Summarize counts unique journals and collects sample records. Only the
// upper-case key of each pair is visited so journals are counted once.
func Summarize(db models.Database, maxSamples int) Summary {
	keys := make([]string, 0, len(db))
	for key := range db {
		if key == strings.ToUpper(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	s := Summary{UniqueJournals: len(keys)}
	for _, key := range keys {
		if len(s.Samples) >= maxSamples {
			break
		}
		if rec := db[key]; rec.ImpactFactor > 0 {
			s.Samples = append(s.Samples, rec)
		}
	}
	return s
}
