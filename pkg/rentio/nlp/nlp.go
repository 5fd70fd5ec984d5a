package nlp

// Service is the tokenizer/tagger/stemmer contract the indexer and
// matcher depend on. Implementations must lowercase nothing: callers
// normalize case before handing text in.
type Service interface {
	// Tokenize splits text into word tokens.
	Tokenize(text string) ([]string, error)

	// PosTag tokenizes text and tags each token with a Penn-treebank
	// part-of-speech tag.
	PosTag(text string) ([]TaggedToken, error)

	// Stem reduces a token to its stem.
	Stem(token string) string
}

// TaggedToken is a token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// IsNoun reports whether a tag marks a common or proper noun,
// singular or plural.
func IsNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}
