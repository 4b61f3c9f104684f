package fetch_presentation_gateway

import (
	"context"
	stderrors "errors"

	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FetchPresentationGateway implements the FetchPresentationPort
// interface.
type FetchPresentationGateway struct {
	repo *presentation_db.PresentationDBRepository
}

func NewFetchPresentationGateway(pool *pgxpool.Pool) *FetchPresentationGateway {
	return &FetchPresentationGateway{
		repo: presentation_db.NewPresentationDBRepositoryWithPool(pool),
	}
}

func NewFetchPresentationGatewayWithRepository(repo *presentation_db.PresentationDBRepository) *FetchPresentationGateway {
	return &FetchPresentationGateway{repo: repo}
}

func (g *FetchPresentationGateway) FetchPresentationByID(ctx context.Context, id uuid.UUID) (*domain.Presentation, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	presentation, err := g.repo.FetchPresentationByID(ctx, id)
	if err != nil {
		// not-found passes through untouched so rest can map it to 404
		if stderrors.Is(err, domain.ErrPresentationNotFound) {
			return nil, err
		}
		logger.SafeErrorContext(ctx, "Error fetching presentation", "error", err, "id", id)
		return nil, errors.DatabaseError("error fetching presentation", err, map[string]interface{}{
			"id": id.String(),
		})
	}

	return presentation, nil
}
