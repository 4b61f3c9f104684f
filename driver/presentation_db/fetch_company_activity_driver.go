package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// FetchCompanyActivity streams the (company code, dates) triple of
// every record. Deduplication into one entry per company happens in
// the domain layer.
func (r *PresentationDBRepository) FetchCompanyActivity(ctx context.Context) ([]domain.CompanyActivity, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, `SELECT company_code, created_at, event_date FROM presentations`)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching company activity", "error", err)
		return nil, fmt.Errorf("error fetching company activity: %w", err)
	}
	defer rows.Close()

	var activity []domain.CompanyActivity
	for rows.Next() {
		var row domain.CompanyActivity
		if err := rows.Scan(&row.CompanyCode, &row.CreatedAt, &row.EventDate); err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning company activity", "error", err)
			return nil, fmt.Errorf("error scanning company activity: %w", err)
		}
		activity = append(activity, row)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating company activity rows", "error", err)
		return nil, fmt.Errorf("error processing company activity: %w", err)
	}

	return activity, nil
}
