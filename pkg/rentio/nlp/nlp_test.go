package nlp

import "testing"

func TestIsNoun(t *testing.T) {
	cases := map[string]bool{
		"NN":   true,
		"NNS":  true,
		"NNP":  true,
		"NNPS": true,
		"VBG":  false,
		"JJ":   false,
		"DT":   false,
		"":     false,
	}
	for tag, want := range cases {
		if got := IsNoun(tag); got != want {
			t.Errorf("IsNoun(%q) = %v, want %v", tag, got, want)
		}
	}
}
