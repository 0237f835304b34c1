package text

import (
	"regexp"
	"strings"
)

// wordRegex matches runs of ASCII letters; digits and punctuation are
// token separators.
var wordRegex = regexp.MustCompile(`[a-zA-Z]+`)

// Tokenizer normalizes free text into lowercase alphabetic tokens with
// stopwords removed. It is deterministic and keeps first-occurrence order,
// including repeats, so downstream frequency counting sees the full multiset.
type Tokenizer struct {
	stopwords map[string]bool
}

func NewTokenizer(stopwords map[string]bool) *Tokenizer {
	return &Tokenizer{stopwords: stopwords}
}

// Tokenize converts raw text into the filtered token sequence. Empty text
// yields an empty (non-nil) slice.
func (t *Tokenizer) Tokenize(raw string) []string {
	tokens := make([]string, 0)
	for _, match := range wordRegex.FindAllString(raw, -1) {
		token := strings.ToLower(match)
		if t.stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
