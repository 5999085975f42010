package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool, db: pool.GetConn()}
}

const searchSQL = `
	SELECT id, first_name, last_name, phone_number
	FROM customers
	WHERE ($1 = '' OR id > $1)
	  AND ($2 = ''
	       OR first_name ILIKE '%' || $2 || '%'
	       OR last_name ILIKE '%' || $2 || '%'
	       OR phone_number ILIKE '%' || $2 || '%')
	ORDER BY id
	LIMIT $3
`

// Search implements storage.Reader with keyset pagination on id.
func (s *Store) Search(ctx context.Context, q storage.Query) ([]domain.Customer, error) {
	slog.Debug("Executing pg customer search", "after", q.After, "term", q.SearchTerm, "limit", q.Limit)

	rows, err := s.db.Query(ctx, searchSQL, q.After.String(), escapeLike(q.SearchTerm), q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	customers, err := pgx.CollectRows(rows, MapToCustomer)
	if err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return customers, nil
}

func (s *Store) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c, err := storage.WithID(c)
	if err != nil {
		return domain.Customer{}, err
	}

	cmd := `
		INSERT INTO customers (id, first_name, last_name, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    phone_number = EXCLUDED.phone_number
	`
	if _, err := s.db.Exec(ctx, cmd, customerValues(c)...); err != nil {
		return domain.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	return c, nil
}

func (s *Store) SaveBulk(ctx context.Context, customers []domain.Customer) error {
	rows := make([][]any, len(customers))

	for i, c := range customers {
		c, err := storage.WithID(c)
		if err != nil {
			return fmt.Errorf("customer %d: %w", i, err)
		}
		rows[i] = customerValues(c)
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"customers"},
		customerColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert customers: %w", err)
	}

	slog.Info("Customers copied to postgres", "count", len(customers))
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
