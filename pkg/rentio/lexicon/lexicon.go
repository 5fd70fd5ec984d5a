// Package lexicon maps everyday vocabulary onto catalog vocabulary.
// A shopper who asks for a "couch" should match a catalog that only
// knows "sofa"; synonym groups make that connection without touching
// the index itself.
package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon stores synonym groups keyed by their canonical form and a
// reverse index from every variant to that canonical.
type Lexicon struct {
	synonyms     map[string][]string
	reverseIndex map[string]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// LoadFromYAML loads synonym mappings from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: sofa
//	    variants: [couch, settee]
//	  - canonical: tv
//	    variants: [television, telly]
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	lex := New()
	for _, entry := range config.Synonyms {
		lex.AddSynonymGroup(entry.Canonical, entry.Variants)
	}
	return lex, nil
}

// AddSynonymGroup registers a canonical form and its variants. Adding
// a group for an existing canonical replaces the old group.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	canonical = strings.ToLower(canonical)

	if old, exists := l.synonyms[canonical]; exists {
		for _, v := range old {
			delete(l.reverseIndex, v)
		}
	}

	group := make([]string, 0, len(variants)+1)
	seen := map[string]bool{canonical: true}
	group = append(group, canonical)
	for _, v := range variants {
		v = strings.ToLower(v)
		if !seen[v] {
			group = append(group, v)
			seen[v] = true
		}
	}

	l.synonyms[canonical] = group
	for _, v := range group {
		l.reverseIndex[v] = canonical
	}
}

// Normalize returns the canonical form of a token, or the token
// itself when it belongs to no group.
func (l *Lexicon) Normalize(token string) string {
	if canonical, ok := l.reverseIndex[strings.ToLower(token)]; ok {
		return canonical
	}
	return token
}

// Variants returns a canonical form's full synonym group, canonical
// first. Nil when unknown.
func (l *Lexicon) Variants(canonical string) []string {
	group, ok := l.synonyms[strings.ToLower(canonical)]
	if !ok {
		return nil
	}
	out := make([]string, len(group))
	copy(out, group)
	return out
}
