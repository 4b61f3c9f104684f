package presentation_db

import (
	"context"
	"errors"
	"fmt"

	"finconf/domain"
	"finconf/utils/logger"
)

// InsertPresentation persists a new record. The store assigns id,
// created_at and updated_at; they are written back into p.
func (r *PresentationDBRepository) InsertPresentation(ctx context.Context, p *domain.Presentation) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `
		INSERT INTO presentations (
			company_code,
			company_name,
			event_date,
			presentation_tw_url,
			presentation_en_url,
			audio_link_url,
			market_type,
			slug,
			keywords,
			description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.CompanyCode,
		p.CompanyName,
		p.EventDate,
		p.PresentationTWUrl,
		p.PresentationEnUrl,
		p.AudioLinkUrl,
		string(p.MarketType),
		p.Slug,
		p.Keywords,
		p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error inserting presentation", "error", err, "company_code", p.CompanyCode, "slug", p.Slug)
		return fmt.Errorf("error inserting presentation: %w", err)
	}

	return nil
}
