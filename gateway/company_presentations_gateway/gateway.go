package company_presentations_gateway

import (
	"context"

	"finconf/domain"
	"finconf/driver/presentation_db"
	"finconf/utils/errors"
	"finconf/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyPresentationsGateway implements the CompanyPresentationsPort
// interface.
type CompanyPresentationsGateway struct {
	repo *presentation_db.PresentationDBRepository
}

func NewCompanyPresentationsGateway(pool *pgxpool.Pool) *CompanyPresentationsGateway {
	return &CompanyPresentationsGateway{
		repo: presentation_db.NewPresentationDBRepositoryWithPool(pool),
	}
}

func NewCompanyPresentationsGatewayWithRepository(repo *presentation_db.PresentationDBRepository) *CompanyPresentationsGateway {
	return &CompanyPresentationsGateway{repo: repo}
}

func (g *CompanyPresentationsGateway) FetchCompanyPresentations(ctx context.Context, companyCode string, limit, offset int) ([]*domain.Presentation, error) {
	if g.repo == nil {
		return nil, errors.DatabaseError("database connection not available", nil, nil)
	}

	presentations, err := g.repo.FetchCompanyPresentations(ctx, companyCode, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching company presentations", "error", err, "company_code", companyCode)
		return nil, errors.DatabaseError("error fetching company presentations", err, map[string]interface{}{
			"company_code": companyCode,
		})
	}

	return presentations, nil
}

func (g *CompanyPresentationsGateway) CountCompanyPresentations(ctx context.Context, companyCode string) (int, error) {
	if g.repo == nil {
		return 0, errors.DatabaseError("database connection not available", nil, nil)
	}

	total, err := g.repo.CountCompanyPresentations(ctx, companyCode)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting company presentations", "error", err, "company_code", companyCode)
		return 0, errors.DatabaseError("error counting company presentations", err, map[string]interface{}{
			"company_code": companyCode,
		})
	}

	return total, nil
}
