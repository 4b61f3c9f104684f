package fetch_recent_presentations_usecase

import (
	"context"

	"finconf/domain"
	"finconf/port/fetch_recent_presentations_port"
	"finconf/utils/logger"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type FetchRecentPresentationsInput struct {
	Limit      int
	MarketType domain.MarketType
}

type FetchRecentPresentationsOutput struct {
	Presentations []*domain.Presentation `json:"data"`
	Total         int                    `json:"total"`
}

// FetchRecentPresentationsUsecase serves the newest-first listing.
type FetchRecentPresentationsUsecase struct {
	gateway fetch_recent_presentations_port.FetchRecentPresentationsPort
}

func NewFetchRecentPresentationsUsecase(gateway fetch_recent_presentations_port.FetchRecentPresentationsPort) *FetchRecentPresentationsUsecase {
	return &FetchRecentPresentationsUsecase{gateway: gateway}
}

func (u *FetchRecentPresentationsUsecase) Execute(ctx context.Context, input FetchRecentPresentationsInput) (*FetchRecentPresentationsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	presentations, err := u.gateway.FetchRecentPresentations(ctx, input.MarketType, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch recent presentations", "error", err, "limit", limit)
		return nil, err
	}

	if presentations == nil {
		presentations = []*domain.Presentation{}
	}

	// Total mirrors the returned page size, not a collection count.
	return &FetchRecentPresentationsOutput{
		Presentations: presentations,
		Total:         len(presentations),
	}, nil
}
