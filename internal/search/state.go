package search

import (
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/pkg/pagination"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is everything a browsing session knows about itself.
type State struct {
	Limit      int
	SearchTerm string
	Cursors    CursorStack
	Results    []domain.Customer
	Phase      Phase
	// Err holds the failure of the latest fetch while Phase is PhaseFailed.
	Err error
}

func (s State) clone() State {
	s.Results = append([]domain.Customer(nil), s.Results...)
	return s
}

// Trigger is an input that may move the controller to a new state.
type Trigger interface {
	isTrigger()
}

type Initialize struct{}

type SetLimit struct {
	Limit int
}

type SetSearchTerm struct {
	Term string
}

type Next struct{}

type Previous struct{}

// Reload fetches the current state again without changing it.
type Reload struct{}

func (Initialize) isTrigger()    {}
func (SetLimit) isTrigger()      {}
func (SetSearchTerm) isTrigger() {}
func (Next) isTrigger()          {}
func (Previous) isTrigger()      {}
func (Reload) isTrigger()        {}

// transition computes the state produced by t and reports whether a fetch
// must follow. It never touches Phase, Err or Results of a fetch.
func transition(s State, t Trigger) (State, bool) {
	switch t := t.(type) {
	case Initialize:
		return State{Limit: pagination.DefaultPageSize}, true

	case SetLimit:
		s.Limit = t.Limit
		s.Cursors = s.Cursors.Reset()
		return s, true

	case SetSearchTerm:
		s.SearchTerm = t.Term
		s.Cursors = s.Cursors.Reset()
		return s, true

	case Next:
		// While a page is loading, Results still hold the previous page and
		// its last id is already on the stack.
		if len(s.Results) == 0 || s.Phase == PhaseFetching {
			return s, false
		}
		s.Cursors = s.Cursors.Push(s.Results[len(s.Results)-1].ID)
		return s, true

	case Previous:
		if s.Cursors.IsEmpty() {
			return s, false
		}
		s.Cursors = s.Cursors.Pop()
		return s, true

	case Reload:
		return s, true

	default:
		return s, false
	}
}
