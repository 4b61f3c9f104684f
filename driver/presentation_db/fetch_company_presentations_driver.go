package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// FetchCompanyPresentations returns one page of a company's records by
// exact company code.
func (r *PresentationDBRepository) FetchCompanyPresentations(ctx context.Context, companyCode string, limit, offset int) ([]*domain.Presentation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM presentations
		WHERE company_code = $1
		ORDER BY event_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`, presentationColumns)

	rows, err := r.pool.Query(ctx, query, companyCode, limit, offset)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching company presentations", "error", err, "company_code", companyCode)
		return nil, fmt.Errorf("error fetching company presentations: %w", err)
	}
	defer rows.Close()

	var presentations []*domain.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning company presentation", "error", err)
			return nil, fmt.Errorf("error scanning company presentations: %w", err)
		}
		presentations = append(presentations, p)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating company presentation rows", "error", err)
		return nil, fmt.Errorf("error processing company presentations: %w", err)
	}

	return presentations, nil
}

// CountCompanyPresentations counts all records for a company code.
func (r *PresentationDBRepository) CountCompanyPresentations(ctx context.Context, companyCode string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM presentations WHERE company_code = $1`, companyCode).Scan(&total)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error counting company presentations", "error", err, "company_code", companyCode)
		return 0, fmt.Errorf("error counting company presentations: %w", err)
	}

	return total, nil
}
