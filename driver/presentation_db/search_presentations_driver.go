package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// SearchPresentations returns one page of records matching the query,
// newest event first with ingestion time as tie-break.
func (r *PresentationDBRepository) SearchPresentations(ctx context.Context, q domain.SearchQuery, limit, offset int) ([]*domain.Presentation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	where, args := buildSearchWhere(q)

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM presentations
		%s
		ORDER BY event_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, presentationColumns, where, limitPos, offsetPos)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error searching presentations", "error", err, "limit", limit, "offset", offset)
		return nil, fmt.Errorf("error searching presentations: %w", err)
	}
	defer rows.Close()

	var presentations []*domain.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning presentation row", "error", err)
			return nil, fmt.Errorf("error scanning presentations: %w", err)
		}
		presentations = append(presentations, p)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating presentation rows", "error", err)
		return nil, fmt.Errorf("error processing presentations: %w", err)
	}

	return presentations, nil
}
