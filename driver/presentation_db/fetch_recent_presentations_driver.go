package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// FetchRecentPresentations returns the newest records, optionally
// restricted to one market type. An empty market type means no filter.
func (r *PresentationDBRepository) FetchRecentPresentations(ctx context.Context, marketType domain.MarketType, limit int) ([]*domain.Presentation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var query string
	var args []any

	if marketType != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM presentations
			WHERE market_type = $1
			ORDER BY event_date DESC, created_at DESC
			LIMIT $2
		`, presentationColumns)
		args = []any{string(marketType), limit}
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM presentations
			ORDER BY event_date DESC, created_at DESC
			LIMIT $1
		`, presentationColumns)
		args = []any{limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching recent presentations", "error", err, "limit", limit)
		return nil, fmt.Errorf("error fetching recent presentations: %w", err)
	}
	defer rows.Close()

	var presentations []*domain.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning recent presentation", "error", err)
			return nil, fmt.Errorf("error scanning recent presentations: %w", err)
		}
		presentations = append(presentations, p)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating recent presentation rows", "error", err)
		return nil, fmt.Errorf("error processing recent presentations: %w", err)
	}

	return presentations, nil
}
