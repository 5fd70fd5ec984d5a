package dialog

import (
	"github.com/oklog/ulid/v2"

	"github.com/rentio/rentio/pkg/rentio/match"
)

// Session is the mutable per-conversation state. One writer, no
// concurrent readers; the index it resolves against is shared and
// read-only.
type Session struct {
	ID        string
	Utterance string

	// Found accumulates the matcher's per-turn sets under the
	// carry-over rule in match.Merge.
	Found match.FoundSets

	// PossibleProducts carries a candidate list offered in a prior
	// turn, retained so a follow-up utterance can narrow it.
	PossibleProducts map[string]struct{}
}

// NewSession creates a fresh session with a ULID identifier.
func NewSession() *Session {
	return &Session{
		ID:               ulid.Make().String(),
		PossibleProducts: make(map[string]struct{}),
	}
}

// Reset clears all found and possible sets. The catalog index is
// untouched; a reset session behaves as if it just started.
func (s *Session) Reset() {
	s.Found = match.FoundSets{}
	s.PossibleProducts = make(map[string]struct{})
}
