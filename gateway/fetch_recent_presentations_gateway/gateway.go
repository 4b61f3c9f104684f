package fetch_recent_presentations_gateway

import (
	"context"

	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FetchRecentPresentationsGateway implements the
// FetchRecentPresentationsPort interface.
type FetchRecentPresentationsGateway struct {
	repo *presentation_db.PresentationDBRepository
}

func NewFetchRecentPresentationsGateway(pool *pgxpool.Pool) *FetchRecentPresentationsGateway {
	return &FetchRecentPresentationsGateway{
		repo: presentation_db.NewPresentationDBRepositoryWithPool(pool),
	}
}

func NewFetchRecentPresentationsGatewayWithRepository(repo *presentation_db.PresentationDBRepository) *FetchRecentPresentationsGateway {
	return &FetchRecentPresentationsGateway{repo: repo}
}

func (g *FetchRecentPresentationsGateway) FetchRecentPresentations(ctx context.Context, marketType domain.MarketType, limit int) ([]*domain.Presentation, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	presentations, err := g.repo.FetchRecentPresentations(ctx, marketType, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching recent presentations", "error", err, "limit", limit)
		return nil, errors.DatabaseError("error fetching recent presentations", err, map[string]interface{}{
			"limit":       limit,
			"market_type": string(marketType),
		})
	}

	return presentations, nil
}
