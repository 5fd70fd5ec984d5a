// Package nlptest provides a deterministic in-memory nlp.Service for
// tests, so unit tests do not depend on the prose tagger's model.
package nlptest

import (
	"strings"
	"unicode"

	"github.com/rentio/rentio/pkg/rentio/nlp"
)

// Fake is a rule-driven nlp.Service. Tokenization splits on anything
// that is not a letter or digit. Every token is tagged "NN" unless
// Tags overrides it. Stems defaults to stripping a trailing "s"
// unless Stems overrides it.
type Fake struct {
	// Tags maps a token to its POS tag. Missing tokens tag as "NN".
	Tags map[string]string

	// Stems maps a token to its stem. Missing tokens strip a
	// trailing "s".
	Stems map[string]string
}

// New creates a Fake with empty overrides.
func New() *Fake {
	return &Fake{
		Tags:  make(map[string]string),
		Stems: make(map[string]string),
	}
}

// Tokenize implements nlp.Service.
func (f *Fake) Tokenize(text string) ([]string, error) {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), nil
}

// PosTag implements nlp.Service.
func (f *Fake) PosTag(text string) ([]nlp.TaggedToken, error) {
	tokens, err := f.Tokenize(text)
	if err != nil {
		return nil, err
	}

	out := make([]nlp.TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tag := "NN"
		if t, ok := f.Tags[tok]; ok {
			tag = t
		}
		out = append(out, nlp.TaggedToken{Text: tok, Tag: tag})
	}
	return out, nil
}

// Stem implements nlp.Service.
func (f *Fake) Stem(token string) string {
	if s, ok := f.Stems[token]; ok {
		return s
	}
	return strings.TrimSuffix(token, "s")
}
