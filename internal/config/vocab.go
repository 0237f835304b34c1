package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadVocabulary reads the vocabulary file pointed to by VOCAB_CONFIG_PATH
// (default configs/vocab.yaml). A missing file falls back to the compiled-in
// default vocabulary so the engine works without any deployment assets.
func LoadVocabulary() (*Vocabulary, error) {
	path := os.Getenv("VOCAB_CONFIG_PATH")
	if path == "" {
		path = "configs/vocab.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultVocabulary(), nil
		}
		return nil, err
	}

	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	applyDefaults(&vocab)

	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	return &vocab, nil
}

func applyDefaults(vocab *Vocabulary) {
	defaults := DefaultVocabulary()

	if len(vocab.Stopwords) == 0 {
		vocab.Stopwords = defaults.Stopwords
	}
	if len(vocab.Skills) == 0 {
		vocab.Skills = defaults.Skills
	}
	if vocab.Synonyms == nil {
		vocab.Synonyms = defaults.Synonyms
	}
}

func (v *Vocabulary) Validate() error {
	if len(v.Skills) == 0 {
		return fmt.Errorf("vocabulary has no skill terms")
	}
	return nil
}

// DefaultVocabulary is the built-in lexicon used when no vocab file is
// deployed alongside the binary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Stopwords: []string{
			"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "do", "does", "did", "will", "would", "could",
			"should", "of", "at", "by", "for", "with", "about", "against",
			"between", "into", "through", "during", "before", "after", "to",
			"from", "in", "on", "and", "or", "as", "we", "you", "our", "your",
		},
		Skills: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"python", "java", "go", "golang", "javascript", "typescript",
			"react", "angular", "node", "django", "flask", "spring",
			"sql", "postgresql", "mysql", "mongodb", "redis", "kafka",
			"api", "rest", "grpc", "graphql", "microservices", "linux",
			"git", "jenkins", "devops", "agile", "scrum",
		},
		Synonyms: map[string][]string{
			"golang":     {"go"},
			"js":         {"javascript"},
			"ts":         {"typescript"},
			"k8s":        {"kubernetes"},
			"postgres":   {"postgresql", "sql"},
			"nodejs":     {"node", "javascript"},
			"amazon":     {"aws"},
			"containers": {"docker", "kubernetes"},
			"backend":    {"api", "server"},
			"frontend":   {"react", "javascript"},
		},
	}
}
