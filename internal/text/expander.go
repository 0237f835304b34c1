package text

// Expander enriches a token sequence with domain synonyms. Expansion is one
// level deep: synonyms of synonyms are not followed.
type Expander struct {
	synonyms map[string][]string
}

func NewExpander(synonyms map[string][]string) *Expander {
	return &Expander{synonyms: synonyms}
}

// Expand returns the deduplicated union of the input tokens and the synonyms
// of every input token present in the table.
func (e *Expander) Expand(tokens []string) map[string]bool {
	expanded := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		expanded[token] = true
		for _, syn := range e.synonyms[token] {
			expanded[syn] = true
		}
	}
	return expanded
}

// ToSet deduplicates a token sequence without synonym expansion.
func ToSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	return set
}
