package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/storage"
)

// Store keeps customers in memory, ordered by id.
type Store struct {
	storageLock sync.RWMutex
	storage     map[domain.Key]domain.Customer
	ids         []domain.Key
}

func NewStore() *Store {
	return &Store{
		storage: make(map[domain.Key]domain.Customer),
	}
}

func (s *Store) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c, err := storage.WithID(c)
	if err != nil {
		return domain.Customer{}, err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.put(c)

	slog.Debug("Customer saved to in-memory storage", "id", c.ID)
	return c, nil
}

func (s *Store) SaveBulk(ctx context.Context, customers []domain.Customer) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, c := range customers {
		c, err := storage.WithID(c)
		if err != nil {
			return err
		}
		s.put(c)
	}

	slog.Info("Customers saved to in-memory storage", "count", len(customers))
	return nil
}

// put must be called with the write lock held.
func (s *Store) put(c domain.Customer) {
	if _, exists := s.storage[c.ID]; !exists {
		i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= c.ID })
		s.ids = append(s.ids, "")
		copy(s.ids[i+1:], s.ids[i:])
		s.ids[i] = c.ID
	}
	s.storage[c.ID] = c
}

func (s *Store) Search(ctx context.Context, q storage.Query) ([]domain.Customer, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	start := 0
	if !q.After.IsZero() {
		start = sort.Search(len(s.ids), func(i int) bool { return s.ids[i] > q.After })
	}

	customers := make([]domain.Customer, 0, q.Limit)
	for _, id := range s.ids[start:] {
		if len(customers) >= q.Limit {
			break
		}
		c := s.storage[id]
		if storage.Matches(c, q.SearchTerm) {
			customers = append(customers, c)
		}
	}

	return customers, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
