package company_presentations_port

import (
	"context"

	"finconf/domain"
)

// CompanyPresentationsPort defines the interface for per-company
// paginated history.
type CompanyPresentationsPort interface {
	FetchCompanyPresentations(ctx context.Context, companyCode string, limit, offset int) ([]*domain.Presentation, error)
	CountCompanyPresentations(ctx context.Context, companyCode string) (int, error)
}
