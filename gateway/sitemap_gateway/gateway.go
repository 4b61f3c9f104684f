package sitemap_gateway

import (
	"context"

	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SitemapGateway implements the SitemapPort interface.
type SitemapGateway struct {
	repo *presentation_db.PresentationDBRepository
}

func NewSitemapGateway(pool *pgxpool.Pool) *SitemapGateway {
	return &SitemapGateway{
		repo: presentation_db.NewPresentationDBRepositoryWithPool(pool),
	}
}

func NewSitemapGatewayWithRepository(repo *presentation_db.PresentationDBRepository) *SitemapGateway {
	return &SitemapGateway{repo: repo}
}

func (g *SitemapGateway) CountAllPresentations(ctx context.Context) (int, error) {
	if g.repo == nil {
		return 0, errors.DatabaseError("database connection not available", nil, nil)
	}

	total, err := g.repo.CountPresentations(ctx, domain.SearchQuery{})
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting presentations for sitemap", "error", err)
		return 0, errors.DatabaseError("error counting presentations", err, nil)
	}

	return total, nil
}

func (g *SitemapGateway) FetchSitemapChunk(ctx context.Context, limit, offset int) ([]domain.SitemapRecord, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	records, err := g.repo.FetchSitemapChunk(ctx, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching sitemap chunk", "error", err, "offset", offset)
		return nil, errors.DatabaseError("error fetching sitemap chunk", err, map[string]interface{}{
			"offset": offset,
		})
	}

	return records, nil
}

func (g *SitemapGateway) FetchCompanyActivity(ctx context.Context) ([]domain.CompanyActivity, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	activity, err := g.repo.FetchCompanyActivity(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching company activity", "error", err)
		return nil, errors.DatabaseError("error fetching company activity", err, nil)
	}

	return activity, nil
}
