package config

import (
	"fmt"

	"github.com/rentio/rentio/pkg/rentio/lexicon"
	"github.com/rentio/rentio/pkg/rentio/stoplist"
)

// Loader turns configured file paths into constructed components.
type Loader struct {
	LexiconPath  string
	StoplistPath string
}

// Components holds the loaded matcher components. Lexicon is nil and
// Stoplist empty when their paths were not configured.
type Components struct {
	Lexicon  *lexicon.Lexicon
	Stoplist *stoplist.Manager
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	}

	if l.StoplistPath != "" {
		stops, err := stoplist.LoadFromYAML(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stops
	} else {
		comp.Stoplist = stoplist.NewManager(nil)
	}

	return comp, nil
}
