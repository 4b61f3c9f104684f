package presentation_db

import (
	"context"
	"testing"
	"time"

	"finconf/domain"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationDBRepository_FetchRecentPresentations_NoTypeFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PresentationDBRepository{pool: mock}

	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(presentationRowColumns())
	rows = addPresentationRow(rows, uuid.New(), "2330", "台積電", eventDate, eventDate)
	rows = addPresentationRow(rows, uuid.New(), "2317", "鴻海", eventDate.AddDate(0, 0, -1), eventDate.AddDate(0, 0, -1))

	mock.ExpectQuery("SELECT").
		WithArgs(10).
		WillReturnRows(rows)

	presentations, err := repo.FetchRecentPresentations(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, presentations, 2)
	assert.Equal(t, "2330", presentations[0].CompanyCode)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationDBRepository_FetchRecentPresentations_WithTypeFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PresentationDBRepository{pool: mock}

	mock.ExpectQuery("SELECT").
		WithArgs("otc", 5).
		WillReturnRows(pgxmock.NewRows(presentationRowColumns()))

	presentations, err := repo.FetchRecentPresentations(context.Background(), domain.MarketTypeOTC, 5)
	require.NoError(t, err)
	assert.Empty(t, presentations)

	require.NoError(t, mock.ExpectationsWereMet())
}
