package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchPresentationByID returns a single record or
// domain.ErrPresentationNotFound.
func (r *PresentationDBRepository) FetchPresentationByID(ctx context.Context, id uuid.UUID) (*domain.Presentation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM presentations
		WHERE id = $1
	`, presentationColumns)

	p, err := scanPresentation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPresentationNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching presentation", "error", err, "id", id)
		return nil, fmt.Errorf("error fetching presentation: %w", err)
	}

	return p, nil
}
