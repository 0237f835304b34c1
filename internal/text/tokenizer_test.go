package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testStopwords = map[string]bool{
	"the": true, "and": true, "with": true, "a": true,
}

func TestTokenize(t *testing.T) {
	tokenizer := NewTokenizer(testStopwords)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "Senior Backend-Engineer, (AWS)",
			want: []string{"senior", "backend", "engineer", "aws"},
		},
		{
			name: "drops stopwords",
			text: "the engineer and the architect",
			want: []string{"engineer", "architect"},
		},
		{
			name: "digits are separators",
			text: "python3 web2py",
			want: []string{"python", "web", "py"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "only punctuation and digits",
			text: "123 !?.",
			want: []string{},
		},
		{
			name: "preserves order and repeats",
			text: "docker aws docker",
			want: []string{"docker", "aws", "docker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizer.Tokenize(tt.text))
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	tokenizer := NewTokenizer(testStopwords)
	text := "Cloud Engineer with AWS, Docker and Kubernetes experience"

	first := tokenizer.Tokenize(text)
	second := tokenizer.Tokenize(text)

	assert.Equal(t, first, second)
}

func TestTokenize_OutputInvariants(t *testing.T) {
	tokenizer := NewTokenizer(testStopwords)
	tokens := tokenizer.Tokenize("The Quick-Brown FOX jumps over 42 lazy-dogs!")

	for _, token := range tokens {
		assert.Regexp(t, "^[a-z]+$", token)
		assert.False(t, testStopwords[token], "stopword leaked: %s", token)
	}
}

func TestExpand(t *testing.T) {
	expander := NewExpander(map[string][]string{
		"golang": {"go"},
		"k8s":    {"kubernetes"},
		// one level only: "go" itself maps to nothing here
	})

	got := expander.Expand([]string{"golang", "docker", "golang"})

	assert.Equal(t, map[string]bool{"golang": true, "go": true, "docker": true}, got)
}

func TestExpand_NoRecursion(t *testing.T) {
	// a -> b, b -> c: expanding [a] must yield {a, b}, never c.
	expander := NewExpander(map[string][]string{
		"a": {"b"},
		"b": {"c"},
	})

	got := expander.Expand([]string{"a"})

	assert.True(t, got["a"])
	assert.True(t, got["b"])
	assert.False(t, got["c"])
}

func TestExpand_Empty(t *testing.T) {
	expander := NewExpander(nil)
	assert.Empty(t, expander.Expand(nil))
}

func TestToSet(t *testing.T) {
	got := ToSet([]string{"aws", "docker", "aws"})
	assert.Equal(t, map[string]bool{"aws": true, "docker": true}, got)
}
