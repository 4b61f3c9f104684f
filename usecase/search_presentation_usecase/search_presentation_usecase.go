package search_presentation_usecase

import (
	"context"

	"finconf/domain"
	"finconf/port/search_presentation_port"
	"finconf/utils/logger"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// SearchPresentationsInput carries the already-typed filter plus the
// requested window.
type SearchPresentationsInput struct {
	Query domain.SearchQuery
	Page  int
	Limit int
}

type SearchPresentationsOutput struct {
	Presentations []*domain.Presentation `json:"data"`
	Pagination    domain.Pagination      `json:"pagination"`
}

// SearchPresentationsUsecase handles the paginated catalog search.
type SearchPresentationsUsecase struct {
	gateway search_presentation_port.SearchPresentationsPort
}

func NewSearchPresentationsUsecase(gateway search_presentation_port.SearchPresentationsPort) *SearchPresentationsUsecase {
	return &SearchPresentationsUsecase{gateway: gateway}
}

// Execute runs the filtered find and the unbounded count concurrently
// and joins them; either failure fails the whole request, no partial
// result is returned.
func (u *SearchPresentationsUsecase) Execute(ctx context.Context, input SearchPresentationsInput) (*SearchPresentationsOutput, error) {
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
		presentations, err = u.gateway.SearchPresentations(gctx, input.Query, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.gateway.CountPresentations(gctx, input.Query)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.SafeErrorContext(ctx, "failed to search presentations", "error", err, "page", page, "limit", limit)
		return nil, err
	}

	if presentations == nil {
		presentations = []*domain.Presentation{}
	}

	return &SearchPresentationsOutput{
		Presentations: presentations,
		Pagination:    domain.NewPagination(page, limit, total),
	}, nil
}
