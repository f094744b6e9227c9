package index

import (
	"regexp"
	"strings"
)

// tokenPattern matches maximal runs of ASCII letters of length >= 2.
// Numbers and punctuation never form tokens.
var tokenPattern = regexp.MustCompile(`[a-z]{2,}`)

// tokenizer lowercases text, extracts alphabetic tokens, drops stopwords,
// and expands the remaining stream into contiguous n-grams.
type tokenizer struct {
	minN      int
	maxN      int
	stopwords map[string]struct{}
}

func newTokenizer(minN, maxN int) *tokenizer {
	return &tokenizer{
		minN:      minN,
		maxN:      maxN,
		stopwords: defaultStopwords(),
	}
}

// terms returns all vocabulary units for text: unigrams after stopword
// removal, plus n-grams built from the filtered stream with tokens joined
// by a single space.
func (t *tokenizer) terms(text string) []string {
	tokens := t.tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	var out []string
	for n := t.minN; n <= t.maxN; n++ {
		if n > len(tokens) {
			break
		}
		for i := 0; i+n <= len(tokens); i++ {
			if n == 1 {
				out = append(out, tokens[i])
				continue
			}
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// tokenize returns the stopword-filtered unigram stream.
func (t *tokenizer) tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
