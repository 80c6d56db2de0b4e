package models

// OutcomeKind tags a per-holding diagnostic.
type OutcomeKind int

const (
	// Found means the holding resolved and priced cleanly; it carries no diagnostic.
	Found OutcomeKind = iota
	// NotFound means resolution or pricing failed; the holding contributes zero movement.
	NotFound
	// Mismatched means the search matched a differently named company; the code is still used.
	Mismatched
)

func (k OutcomeKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Mismatched:
		return "mismatched"
	default:
		return "unknown"
	}
}

// Outcome is a diagnostic produced by a single holding evaluation. Outcomes are
// returned by value and merged into the fund maps once every evaluation finished.
type Outcome struct {
	Kind         OutcomeKind
	CompanyName  string
	CorpusWeight float64
	MatchedTitle string // set for Mismatched
	Reason       string // failure reason for NotFound, e.g. "timeout"
}
