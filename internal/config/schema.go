package config

// Vocabulary contains the fixed lexical resources used by the scoring
// pipeline: stopwords dropped at tokenization, the skill vocabulary the
// skill-overlap feature recognizes, and the one-level synonym table used
// by token expansion.
type Vocabulary struct {
	Stopwords []string            `yaml:"stopwords"`
	Skills    []string            `yaml:"skills"`
	Synonyms  map[string][]string `yaml:"synonyms"`
}

// StopwordSet returns the stopwords as a lookup set.
func (v *Vocabulary) StopwordSet() map[string]bool {
	return toSet(v.Stopwords)
}

// SkillSet returns the skill vocabulary as a lookup set.
func (v *Vocabulary) SkillSet() map[string]bool {
	return toSet(v.Skills)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
