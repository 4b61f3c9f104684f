package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// FetchSitemapChunk returns one fixed-size slice of the full record
// set ordered by ingestion time, newest first. The ordering keeps
// chunk membership stable for an unchanging collection.
func (r *PresentationDBRepository) FetchSitemapChunk(ctx context.Context, limit, offset int) ([]domain.SitemapRecord, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, created_at, event_date
		FROM presentations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching sitemap chunk", "error", err, "limit", limit, "offset", offset)
		return nil, fmt.Errorf("error fetching sitemap chunk: %w", err)
	}
	defer rows.Close()

	var records []domain.SitemapRecord
	for rows.Next() {
		var rec domain.SitemapRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.EventDate); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning sitemap record", "error", err)
			return nil, fmt.Errorf("error scanning sitemap chunk: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating sitemap chunk rows", "error", err)
		return nil, fmt.Errorf("error processing sitemap chunk: %w", err)
	}

	return records, nil
}
