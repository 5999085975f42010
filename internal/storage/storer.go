package storage

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	// Save stores c, assigning a new id when c has none, and returns the stored customer.
	Save(ctx context.Context, c domain.Customer) (domain.Customer, error)
	SaveBulk(ctx context.Context, customers []domain.Customer) error
}

// Store is a complete customer backend.
type Store interface {
	Reader
	Storer
	Ping(ctx context.Context) error
	Close() error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// NewID returns a time-ordered id, so customers created later sort after
// earlier ones.
func NewID() (domain.Key, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate customer id: %w", err)
	}
	return domain.Key(id.String()), nil
}

// WithID returns c with a generated id when it has none.
func WithID(c domain.Customer) (domain.Customer, error) {
	if !c.ID.IsZero() {
		return c, nil
	}
	id, err := NewID()
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID = id
	return c, nil
}
