package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/pkg/pagination"
)

// Controller drives one browsing session: it applies triggers to its state
// and fetches the page the new state points at.
//
// Every fetch gets a sequence number. Only the completion of the most
// recently issued fetch is applied, so overlapping triggers can never leave
// an older page on display.
type Controller struct {
	fetcher  Fetcher
	observer func(State)

	mu     sync.Mutex
	state  State
	issued uint64
}

type Option func(*Controller)

// WithObserver registers fn to receive a snapshot after every state change.
// fn runs outside the controller lock and may be called from several
// goroutines when triggers overlap.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		state:   State{Limit: pagination.DefaultPageSize},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Initialize(ctx context.Context) error {
	return c.Dispatch(ctx, Initialize{})
}

func (c *Controller) SetLimit(ctx context.Context, limit int) error {
	return c.Dispatch(ctx, SetLimit{Limit: limit})
}

func (c *Controller) SetSearchTerm(ctx context.Context, term string) error {
	return c.Dispatch(ctx, SetSearchTerm{Term: term})
}

func (c *Controller) Next(ctx context.Context) error {
	return c.Dispatch(ctx, Next{})
}

func (c *Controller) Previous(ctx context.Context) error {
	return c.Dispatch(ctx, Previous{})
}

func (c *Controller) Reload(ctx context.Context) error {
	return c.Dispatch(ctx, Reload{})
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Dispatch applies t and, unless t is a no-op for the current state, fetches
// the resulting page before returning. A failed fetch moves the controller
// to PhaseFailed with empty results and the error is returned.
func (c *Controller) Dispatch(ctx context.Context, t Trigger) error {
	c.mu.Lock()
	next, fetch := transition(c.state, t)
	if !fetch {
		c.mu.Unlock()
		slog.Debug("Trigger ignored", "trigger", fmt.Sprintf("%T", t))
		return nil
	}

	c.issued++
	seq := c.issued
	next.Phase = PhaseFetching
	next.Err = nil
	c.state = next
	query := BuildQuery(next.Limit, next.Cursors.CurrentAfter(), next.SearchTerm)
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)

	slog.Debug("Fetching customers", "seq", seq, "query", query)
	customers, err := c.fetcher.Fetch(ctx, query)

	c.mu.Lock()
	if seq != c.issued {
		latest := c.issued
		c.mu.Unlock()
		slog.Debug("Discarding superseded fetch", "seq", seq, "latest", latest, "query", query)
		return nil
	}
	c.apply(customers, err)
	snapshot = c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)

	if err != nil {
		return fmt.Errorf("fetch customers %q: %w", query, err)
	}
	slog.Debug("Customers fetched", "seq", seq, "count", len(customers))
	return nil
}

func (c *Controller) apply(customers []domain.Customer, err error) {
	if err != nil {
		c.state.Phase = PhaseFailed
		c.state.Err = err
		c.state.Results = nil
		return
	}
	c.state.Phase = PhaseLoaded
	c.state.Results = customers
}

func (c *Controller) notify(s State) {
	if c.observer != nil {
		c.observer(s)
	}
}
