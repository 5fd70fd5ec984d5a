// Package match intersects utterance tokens against the catalog
// index's vocabularies. Match itself is stateless; the carry-over of
// found sets between turns happens only in Merge.
package match

import (
	"fmt"

	"github.com/rentio/rentio/pkg/rentio/catalog"
	"github.com/rentio/rentio/pkg/rentio/lexicon"
	"github.com/rentio/rentio/pkg/rentio/nlp"
	"github.com/rentio/rentio/pkg/rentio/stoplist"
)

// FoundSets holds what one utterance matched against the index. A nil
// set means the utterance matched nothing for that vocabulary.
type FoundSets struct {
	CategoryKeywords map[string]struct{}
	Categories       map[string]struct{}
	Brands           map[string]struct{}
	ProductKeywords  map[string]struct{}
	Products         map[string]struct{}
}

// Matcher resolves utterances to FoundSets.
type Matcher struct {
	index  *catalog.Index
	tagger nlp.Service
	lex    *lexicon.Lexicon
	stops  *stoplist.Manager
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLexicon normalizes utterance tokens through a synonym lexicon
// before matching.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(m *Matcher) { m.lex = lex }
}

// WithStoplist drops stopwords from utterance tokens before matching.
func WithStoplist(stops *stoplist.Manager) Option {
	return func(m *Matcher) { m.stops = stops }
}

// New creates a Matcher over the given index.
func New(index *catalog.Index, tagger nlp.Service, opts ...Option) *Matcher {
	m := &Matcher{index: index, tagger: tagger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match tokenizes the utterance into unigrams plus adjacent-pair
// bigrams and intersects them against the index. An utterance equal
// to a product name short-circuits to that product regardless of
// keyword matches.
func (m *Matcher) Match(utterance string) (FoundSets, error) {
	var found FoundSets

	tokens, err := m.tagger.Tokenize(utterance)
	if err != nil {
		return found, fmt.Errorf("tokenize utterance: %w", err)
	}
	if m.stops != nil {
		tokens = m.stops.Filter(tokens)
	}
	if m.lex != nil {
		for i, tok := range tokens {
			tokens[i] = m.lex.Normalize(tok)
		}
	}

	// Bigrams catch multi-word category, brand and product names.
	words := make([]string, 0, 2*len(tokens))
	words = append(words, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		words = append(words, tokens[i]+" "+tokens[i+1])
	}

	found.CategoryKeywords = intersect(words, m.index.IsCategoryKeyword)
	found.Categories = intersect(words, m.index.IsCategory)
	found.Brands = intersect(words, m.index.IsBrand)
	found.ProductKeywords = intersect(words, m.index.IsProductKeyword)
	found.Products = intersect(words, m.index.IsProduct)

	if m.index.IsProduct(utterance) {
		found.Products = map[string]struct{}{utterance: {}}
	}

	return found, nil
}

// Merge applies the carry-over rule: each set from next replaces the
// corresponding set in prev only when the new turn matched at least
// one token for it. A turn that names a brand but repeats no category
// keyword keeps last turn's categories visible.
func Merge(prev, next FoundSets) FoundSets {
	out := prev
	if len(next.CategoryKeywords) > 0 {
		out.CategoryKeywords = next.CategoryKeywords
	}
	if len(next.Categories) > 0 {
		out.Categories = next.Categories
	}
	if len(next.Brands) > 0 {
		out.Brands = next.Brands
	}
	if len(next.ProductKeywords) > 0 {
		out.ProductKeywords = next.ProductKeywords
	}
	if len(next.Products) > 0 {
		out.Products = next.Products
	}
	return out
}

func intersect(words []string, member func(string) bool) map[string]struct{} {
	var set map[string]struct{}
	for _, w := range words {
		if !member(w) {
			continue
		}
		if set == nil {
			set = make(map[string]struct{})
		}
		set[w] = struct{}{}
	}
	return set
}
