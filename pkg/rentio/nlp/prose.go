package nlp

import (
	prose "github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// ProseService implements Service with prose for tokenization and
// tagging and the snowball stemmer for stems.
type ProseService struct{}

// NewProse creates a prose-backed Service.
func NewProse() *ProseService {
	return &ProseService{}
}

// Tokenize splits text into word tokens.
func (p *ProseService) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out, nil
}

// PosTag tokenizes and tags text.
func (p *ProseService) PosTag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Stem reduces a token to its English snowball stem.
func (p *ProseService) Stem(token string) string {
	return english.Stem(token, false)
}
