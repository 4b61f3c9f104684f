package presentation_db

import (
	"context"
	"fmt"
	"strings"

	"finconf/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock's
// pool satisfies it in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type PresentationDBRepository struct {
	pool DBPool
}

func NewPresentationDBRepository(pool DBPool) *PresentationDBRepository {
	return &PresentationDBRepository{pool: pool}
}

func NewPresentationDBRepositoryWithPool(pool *pgxpool.Pool) *PresentationDBRepository {
	return &PresentationDBRepository{pool: pool}
}

const presentationColumns = `
	id,
	company_code,
	company_name,
	event_date,
	presentation_tw_url,
	presentation_en_url,
	audio_link_url,
	market_type,
	slug,
	keywords,
	description,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresentation(row rowScanner) (*domain.Presentation, error) {
	var p domain.Presentation
	err := row.Scan(
		&p.ID,
		&p.CompanyCode,
		&p.CompanyName,
		&p.EventDate,
		&p.PresentationTWUrl,
		&p.PresentationEnUrl,
		&p.AudioLinkUrl,
		&p.MarketType,
		&p.Slug,
		&p.Keywords,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buildSearchWhere translates a SearchQuery into a WHERE clause and its
// positional arguments. An empty query yields an empty clause so the
// statement matches every record.
func buildSearchWhere(q domain.SearchQuery) (string, []any) {
	var conditions []string
	var args []any

	if q.Text != "" {
		args = append(args, "%"+q.Text+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(company_code ILIKE $%d OR company_name ILIKE $%d)", n, n))
	}

	if q.CompanyCode != "" {
		args = append(args, "%"+q.CompanyCode+"%")
		conditions = append(conditions, fmt.Sprintf("company_code ILIKE $%d", len(args)))
	}

	if q.CompanyName != "" {
		args = append(args, "%"+q.CompanyName+"%")
		conditions = append(conditions, fmt.Sprintf("company_name ILIKE $%d", len(args)))
	}

	if !q.DateFrom.IsZero() {
		args = append(args, q.DateFrom)
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d", len(args)))
	}

	if !q.DateTo.IsZero() {
		args = append(args, q.DateTo)
		conditions = append(conditions, fmt.Sprintf("event_date <= $%d", len(args)))
	}

	if q.MarketType != "" {
		args = append(args, string(q.MarketType))
		conditions = append(conditions, fmt.Sprintf("market_type = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
