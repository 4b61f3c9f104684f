package company_presentations_usecase

import (
	"context"
	"errors"
	"testing"

	"finconf/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanyGateway struct {
	presentations []*domain.Presentation
	total         int
	fetchErr      error
	countErr      error

	gotCompanyCode string
	gotLimit       int
	gotOffset      int
}

func (s *stubCompanyGateway) FetchCompanyPresentations(ctx context.Context, companyCode string, limit, offset int) ([]*domain.Presentation, error) {
	s.gotCompanyCode = companyCode
	s.gotLimit = limit
	s.gotOffset = offset
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.presentations, nil
}

func (s *stubCompanyGateway) CountCompanyPresentations(ctx context.Context, companyCode string) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.total, nil
}

func TestCompanyPresentationsUsecase_Success(t *testing.T) {
	gateway := &stubCompanyGateway{
		presentations: []*domain.Presentation{{CompanyCode: "2330"}},
		total:         12,
	}
	usecase := NewCompanyPresentationsUsecase(gateway)

	out, err := usecase.Execute(context.Background(), CompanyPresentationsInput{CompanyCode: "2330", Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "2330", gateway.gotCompanyCode)
	assert.Equal(t, 10, gateway.gotOffset)
	assert.Equal(t, 12, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.Pages)
	assert.True(t, out.Pagination.HasPrev)
	assert.False(t, out.Pagination.HasNext)
}

func TestCompanyPresentationsUsecase_EmptyPageIsNotFound(t *testing.T) {
	gateway := &stubCompanyGateway{presentations: nil, total: 0}
	usecase := NewCompanyPresentationsUsecase(gateway)

	_, err := usecase.Execute(context.Background(), CompanyPresentationsInput{CompanyCode: "9999"})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyPresentationsUsecase_Defaults(t *testing.T) {
	gateway := &stubCompanyGateway{presentations: []*domain.Presentation{{CompanyCode: "2330"}}, total: 1}
	usecase := NewCompanyPresentationsUsecase(gateway)

	out, err := usecase.Execute(context.Background(), CompanyPresentationsInput{CompanyCode: "2330"})
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, gateway.gotLimit)
	assert.Equal(t, 1, out.Pagination.Page)
}

func TestCompanyPresentationsUsecase_GatewayError(t *testing.T) {
	gateway := &stubCompanyGateway{fetchErr: errors.New("boom")}
	usecase := NewCompanyPresentationsUsecase(gateway)

	_, err := usecase.Execute(context.Background(), CompanyPresentationsInput{CompanyCode: "2330"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCompanyNotFound)
}
