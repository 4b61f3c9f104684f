package presentation_db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationDBRepository_FetchSitemapChunk(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PresentationDBRepository{pool: mock}

	id := uuid.New()
	createdAt := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "created_at", "event_date"}).
		AddRow(id, createdAt, eventDate)

	mock.ExpectQuery("SELECT").
		WithArgs(10000, 20000).
		WillReturnRows(rows)

	records, err := repo.FetchSitemapChunk(context.Background(), 10000, 20000)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, createdAt, records[0].CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationDBRepository_FetchCompanyActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PresentationDBRepository{pool: mock}

	createdAt := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"company_code", "created_at", "event_date"}).
		AddRow("2330", createdAt, eventDate).
		AddRow("2317", createdAt.AddDate(0, 0, 1), eventDate)

	mock.ExpectQuery("SELECT").
		WillReturnRows(rows)

	activity, err := repo.FetchCompanyActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.Equal(t, "2330", activity[0].CompanyCode)
	assert.Equal(t, "2317", activity[1].CompanyCode)

	require.NoError(t, mock.ExpectationsWereMet())
}
