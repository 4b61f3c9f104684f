package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// CountPresentations counts all records matching the query, unbounded
// by any pagination window.
func (r *PresentationDBRepository) CountPresentations(ctx context.Context, q domain.SearchQuery) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	where, args := buildSearchWhere(q)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM presentations %s`, where)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		logger.Logger.ErrorContext(ctx, "error counting presentations", "error", err)
		return 0, fmt.Errorf("error counting presentations: %w", err)
	}

	return total, nil
}
