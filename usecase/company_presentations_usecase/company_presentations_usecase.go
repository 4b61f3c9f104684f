package company_presentations_usecase

import (
	"context"

	"finconf/domain"
	"finconf/port/company_presentations_port"
	"finconf/utils/logger"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type CompanyPresentationsInput struct {
	CompanyCode string
	Page        int
	Limit       int
}

type CompanyPresentationsOutput struct {
	Presentations []*domain.Presentation `json:"data"`
	Pagination    domain.Pagination      `json:"pagination"`
}

// CompanyPresentationsUsecase serves one company's presentation
// history.
type CompanyPresentationsUsecase struct {
	gateway company_presentations_port.CompanyPresentationsPort
}

func NewCompanyPresentationsUsecase(gateway company_presentations_port.CompanyPresentationsPort) *CompanyPresentationsUsecase {
	return &CompanyPresentationsUsecase{gateway: gateway}
}

// Execute returns domain.ErrCompanyNotFound when the requested page has
// no rows, matching the endpoint's 404 contract.
func (u *CompanyPresentationsUsecase) Execute(ctx context.Context, input CompanyPresentationsInput) (*CompanyPresentationsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := domain.Offset(page, limit)

	var (
		presentations []*domain.Presentation
		total         int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		presentations, err = u.gateway.FetchCompanyPresentations(gctx, input.CompanyCode, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.gateway.CountCompanyPresentations(gctx, input.CompanyCode)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch company presentations", "error", err, "company_code", input.CompanyCode)
		return nil, err
	}

	if len(presentations) == 0 {
		return nil, domain.ErrCompanyNotFound
	}

	return &CompanyPresentationsOutput{
		Presentations: presentations,
		Pagination:    domain.NewPagination(page, limit, total),
	}, nil
}
