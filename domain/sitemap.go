package domain

import (
	"time"

	"github.com/google/uuid"
)

// SitemapRecord is the slice of a presentation needed for one sitemap
// URL entry.
type SitemapRecord struct {
	ID        uuid.UUID
	CreatedAt time.Time
	EventDate time.Time
}

// LastModified returns the record's sitemap lastmod value, preferring
// the ingestion timestamp and falling back to the event date.
func (r SitemapRecord) LastModified() time.Time {
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt
	}
	return r.EventDate
}

// CompanyActivity is one record's contribution to the companies
// sitemap before deduplication.
type CompanyActivity struct {
	CompanyCode string
	CreatedAt   time.Time
	EventDate   time.Time
}

// LastUpdate returns the activity date, preferring CreatedAt.
func (a CompanyActivity) LastUpdate() time.Time {
	if !a.CreatedAt.IsZero() {
		return a.CreatedAt
	}
	return a.EventDate
}

// CompanySitemapEntry is one deduplicated company in the companies
// sitemap.
type CompanySitemapEntry struct {
	CompanyCode string
	LastUpdate  time.Time
}

// DedupCompanies collapses per-record activity into one entry per
// company in a single pass, keeping the strictly latest date seen for
// each company. Entry order follows first encounter.
func DedupCompanies(rows []CompanyActivity) []CompanySitemapEntry {
	index := make(map[string]int, len(rows))
	entries := make([]CompanySitemapEntry, 0, len(rows))

	for _, row := range rows {
		update := row.LastUpdate()
		i, seen := index[row.CompanyCode]
		if !seen {
			index[row.CompanyCode] = len(entries)
			entries = append(entries, CompanySitemapEntry{
				CompanyCode: row.CompanyCode,
				LastUpdate:  update,
			})
			continue
		}
		if update.After(entries[i].LastUpdate) {
			entries[i].LastUpdate = update
		}
	}

	return entries
}
