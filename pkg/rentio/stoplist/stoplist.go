// Package stoplist filters filler words out of utterance tokens
// before matching. Stopwords are never index keys, so filtering is
// semantics-preserving; it only keeps noise out of bigrams and debug
// logs. The default list is empty.
package stoplist

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manager holds the stopword set.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a manager seeded with the given stopwords.
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		stops[strings.ToLower(s)] = struct{}{}
	}
	return &Manager{stops: stops}
}

// LoadFromYAML loads a stopword list from a YAML file with a single
// `terms` sequence.
func LoadFromYAML(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return NewManager(config.Terms), nil
}

// IsStop checks if a token is a stopword.
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[strings.ToLower(token)]
	return ok
}

// Add adds a token to the stoplist.
func (m *Manager) Add(token string) {
	m.stops[strings.ToLower(token)] = struct{}{}
}

// Remove removes a token from the stoplist.
func (m *Manager) Remove(token string) {
	delete(m.stops, strings.ToLower(token))
}

// Filter returns tokens with stopwords removed.
func (m *Manager) Filter(tokens []string) []string {
	if len(m.stops) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !m.IsStop(tok) {
			out = append(out, tok)
		}
	}
	return out
}
