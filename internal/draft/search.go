package draft

import (
	"context"
	"strings"

	"github.com/flintapp/flint-cli/internal/models"
)

// Status is the lifecycle phase of the current search.
type Status int

const (
	// Idle means no search has been issued yet (or the session was reset).
	Idle Status = iota
	// InFlight means a search has been issued and no response accepted yet.
	InFlight
	// Succeeded means the latest accepted response replaced the results.
	Succeeded
	// Failed means the latest search errored; previous results are retained.
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in_flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Catalog is the slice of the backend the search session needs.
type Catalog interface {
	SearchContents(ctx context.Context, keyword string) ([]models.ContentRef, error)
}

// SearchSession tracks catalog search state for one authoring workflow:
// the active keyword, the latest result set, and a request generation
// counter used to discard stale responses when searches overlap.
//
// Results are replaced wholesale on success and kept as-is on failure, so
// the user never sees a half-merged list. The session is not safe for
// concurrent use; in the TUI all mutations happen on the update loop.
type SearchSession struct {
	catalog Catalog

	keyword    string
	results    []models.ContentRef
	status     Status
	err        error
	generation uint64
}

// NewSearchSession returns an idle session backed by the given catalog.
func NewSearchSession(catalog Catalog) *SearchSession {
	return &SearchSession{catalog: catalog}
}

// Begin starts a search for the keyword and returns the generation token the
// eventual response must be applied with. A blank or whitespace-only keyword
// is a no-op: the session state is untouched and ok is false.
func (s *SearchSession) Begin(keyword string) (gen uint64, ok bool) {
	if strings.TrimSpace(keyword) == "" {
		return 0, false
	}

	s.generation++
	s.keyword = keyword
	s.status = InFlight
	s.err = nil
	return s.generation, true
}

// Fetch runs the catalog search for a generation issued by Begin. It is the
// blocking half of the workflow and safe to run off the update loop; apply
// the outcome with Apply.
func (s *SearchSession) Fetch(ctx context.Context, keyword string) ([]models.ContentRef, error) {
	return s.catalog.SearchContents(ctx, keyword)
}

// Apply records the outcome of the search issued as generation gen. Responses
// from superseded generations are discarded so a slow earlier search can never
// overwrite the results of a later one. Returns whether the outcome was
// accepted.
func (s *SearchSession) Apply(gen uint64, results []models.ContentRef, err error) bool {
	if gen != s.generation {
		return false
	}

	if err != nil {
		s.status = Failed
		s.err = err
		return true
	}

	s.status = Succeeded
	s.err = nil
	s.results = results
	return true
}

// Search is the synchronous composition of Begin, Fetch, and Apply, used by
// the one-shot CLI path where searches never overlap.
func (s *SearchSession) Search(ctx context.Context, keyword string) ([]models.ContentRef, error) {
	gen, ok := s.Begin(keyword)
	if !ok {
		return s.results, nil
	}

	results, err := s.Fetch(ctx, keyword)
	s.Apply(gen, results, err)
	return s.results, err
}

// Keyword returns the keyword of the most recently issued search.
func (s *SearchSession) Keyword() string { return s.keyword }

// Results returns the latest accepted result set.
func (s *SearchSession) Results() []models.ContentRef { return s.results }

// Status returns the lifecycle phase of the session.
func (s *SearchSession) Status() Status { return s.status }

// Err returns the error of the latest failed search, nil otherwise.
func (s *SearchSession) Err() error { return s.err }

// IsSelected reports whether the result is currently in the draft. Evaluated
// live against the draft so selection markers stay correct as entries come
// and go.
func (s *SearchSession) IsSelected(d *Draft, contentID string) bool {
	return d.Contains(contentID)
}

// Reset returns the session to its initial idle state. The generation counter
// keeps advancing so responses from before the reset are still discarded.
func (s *SearchSession) Reset() {
	s.generation++
	s.keyword = ""
	s.results = nil
	s.status = Idle
	s.err = nil
}
