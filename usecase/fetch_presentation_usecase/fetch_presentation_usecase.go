package fetch_presentation_usecase

import (
	"context"

	"finconf/domain"
	"finconf/port/fetch_presentation_port"

	"github.com/google/uuid"
)

// FetchPresentationUsecase handles single-record lookup by identifier.
type FetchPresentationUsecase struct {
	gateway fetch_presentation_port.FetchPresentationPort
}

func NewFetchPresentationUsecase(gateway fetch_presentation_port.FetchPresentationPort) *FetchPresentationUsecase {
	return &FetchPresentationUsecase{gateway: gateway}
}

// Execute validates the identifier format before touching the store.
// A malformed id is domain.ErrInvalidPresentationID (400), a missing
// record is domain.ErrPresentationNotFound (404).
func (u *FetchPresentationUsecase) Execute(ctx context.Context, rawID string) (*domain.Presentation, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.ErrInvalidPresentationID
	}

	return u.gateway.FetchPresentationByID(ctx, id)
}
