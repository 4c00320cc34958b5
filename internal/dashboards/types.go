package dashboards

import "fmt"

// Summary is one dashboard row from a server-side listing. It is a snapshot
// fetched once per command invocation and never persisted.
type Summary struct {
	ID        string
	Title     string
	CreatedBy string
}

// Mode selects how the identifiers of a DeletionRequest are interpreted.
type Mode int

const (
	// ModeExplicitIDs treats identifiers as dashboard UUIDs.
	ModeExplicitIDs Mode = iota
	// ModeTitlePattern treats identifiers as glob/regex title patterns.
	ModeTitlePattern
	// ModeAll ignores identifiers and targets every listed dashboard.
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModeExplicitIDs:
		return "explicit-ids"
	case ModeTitlePattern:
		return "title-pattern"
	case ModeAll:
		return "all"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// DeletionRequest describes one delete invocation as parsed from the CLI.
type DeletionRequest struct {
	Mode        Mode
	Identifiers []string
	Force       bool
}

// Validate checks the request before any network call is made.
func (r DeletionRequest) Validate() error {
	if r.Mode != ModeAll && len(r.Identifiers) == 0 {
		return fmt.Errorf("no identifiers given for %s mode", r.Mode)
	}
	return nil
}

// ItemFailure records one failed item of a bulk operation.
type ItemFailure struct {
	ID  string
	Err error
}

// BulkResult accumulates the outcome of a bulk operation. For every run,
// Succeeded plus len(Failed) equals the number of attempted items.
type BulkResult struct {
	Succeeded int
	Failed    []ItemFailure
}

// Attempted returns how many items were actually processed.
func (r BulkResult) Attempted() int {
	return r.Succeeded + len(r.Failed)
}

// FailedIDs returns the ids of all failed items, in failure order.
func (r BulkResult) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}
