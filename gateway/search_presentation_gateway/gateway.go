package search_presentation_gateway

import (
	"context"

	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SearchPresentationGateway implements the SearchPresentationsPort
// interface on top of the presentation store.
type SearchPresentationGateway struct {
	repo *presentation_db.PresentationDBRepository
}

func NewSearchPresentationGateway(pool *pgxpool.Pool) *SearchPresentationGateway {
	return &SearchPresentationGateway{
		repo: presentation_db.NewPresentationDBRepositoryWithPool(pool),
	}
}

func NewSearchPresentationGatewayWithRepository(repo *presentation_db.PresentationDBRepository) *SearchPresentationGateway {
	return &SearchPresentationGateway{repo: repo}
}

func (g *SearchPresentationGateway) SearchPresentations(ctx context.Context, q domain.SearchQuery, limit, offset int) ([]*domain.Presentation, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	presentations, err := g.repo.SearchPresentations(ctx, q, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error searching presentations", "error", err)
		return nil, errors.DatabaseError("error searching presentations", err, map[string]interface{}{
			"limit":  limit,
			"offset": offset,
		})
	}

	return presentations, nil
}

func (g *SearchPresentationGateway) CountPresentations(ctx context.Context, q domain.SearchQuery) (int, error) {
	if g.repo == nil {
		return 0, errors.DatabaseError("database connection not available", nil, nil)
	}

	total, err := g.repo.CountPresentations(ctx, q)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting presentations", "error", err)
		return 0, errors.DatabaseError("error counting presentations", err, nil)
	}

	return total, nil
}
