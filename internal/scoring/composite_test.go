package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-staffing/match-engine/internal/config"
	"github.com/remote-staffing/match-engine/internal/models"
)

func testVocab() *config.Vocabulary {
	return &config.Vocabulary{
		Stopwords: []string{"the", "and", "a"},
		Skills:    []string{"aws", "docker", "api", "microservices", "kubernetes", "python"},
		Synonyms:  map[string][]string{},
	}
}

func newTestScorer(vocab *config.Vocabulary, minScore float64) *Scorer {
	return NewScorer(vocab, DefaultWeights(), 0.15, minScore)
}

func TestScorePair_GateA_NoSkillOverlap(t *testing.T) {
	scorer := newTestScorer(testVocab(), 0.25)

	job := scorer.PrepareJob(models.Job{Title: "Sales Manager", Description: "quota pipeline negotiation"})
	candidate := scorer.PrepareCandidate(models.Candidate{ResumeText: "aws docker kubernetes"})

	_, ok := scorer.ScorePair(job, candidate)
	assert.False(t, ok)
}

func TestScorePair_GateB_LowLexicalCore(t *testing.T) {
	scorer := newTestScorer(testVocab(), 0.25)

	// One weak shared skill among many distinct terms keeps the core under the floor.
	job := scorer.PrepareJob(models.Job{
		Title:       "Platform Engineer",
		Description: "aws kubernetes python terraform networking observability oncall",
	})
	candidate := scorer.PrepareCandidate(models.Candidate{
		ResumeText: "aws violin orchestra composer teaching conservatory recitals",
	})

	fv, ok := scorer.ScorePair(job, candidate)
	require.False(t, ok)
	assert.Greater(t, fv.SkillOverlap, 0.0)
	assert.Less(t, fv.LexicalCore, 0.15)
}

func TestScorePair_GateC_MinScore(t *testing.T) {
	// Same pair passes with the default minimum and fails with a strict one.
	job := models.Job{Title: "Backend Engineer", Description: "aws docker api"}
	candidate := models.Candidate{ResumeText: "aws docker api engineer"}

	lenient := newTestScorer(testVocab(), 0.25)
	fv, ok := lenient.ScorePair(lenient.PrepareJob(job), lenient.PrepareCandidate(candidate))
	require.True(t, ok)

	strict := newTestScorer(testVocab(), fv.FinalScore+0.01)
	_, ok = strict.ScorePair(strict.PrepareJob(job), strict.PrepareCandidate(candidate))
	assert.False(t, ok)
}

func TestScorePair_SeniorityPenaltyIsExactlyOneWeight(t *testing.T) {
	// Spec'd end-to-end case: senior job vs junior candidate. Swapping the
	// candidate's "junior" for another unshared term keeps every other
	// feature identical, so the finals differ by exactly the seniority weight.
	scorer := newTestScorer(testVocab(), 0.25)

	job := scorer.PrepareJob(models.Job{Title: "Senior Backend Engineer", Description: "aws docker api"})
	junior := scorer.PrepareCandidate(models.Candidate{ResumeText: "experienced aws docker microservices junior"})
	unmarked := scorer.PrepareCandidate(models.Candidate{ResumeText: "experienced aws docker microservices mid"})

	fvJunior, ok := scorer.ScorePair(job, junior)
	require.True(t, ok)
	fvUnmarked, ok := scorer.ScorePair(job, unmarked)
	require.True(t, ok)

	assert.Greater(t, fvJunior.SkillOverlap, 0.0)
	assert.Equal(t, 0.0, fvJunior.SeniorityMatch)
	assert.Equal(t, 1.0, fvUnmarked.SeniorityMatch)
	assert.InDelta(t, 0.05, fvUnmarked.FinalScore-fvJunior.FinalScore, 1e-9)
}

func TestScorePair_MonotonicInSkillOverlap(t *testing.T) {
	// Same documents, so proxy/title/seniority are fixed; only the skill
	// vocabulary changes the overlap. Higher overlap must not lower the final.
	job := models.Job{Title: "Engineer", Description: "aws docker"}
	candidate := models.Candidate{ResumeText: "aws engineer"}

	narrow := testVocab()
	narrow.Skills = []string{"aws"} // overlap 1/1
	broad := testVocab()
	broad.Skills = []string{"aws", "docker"} // overlap 1/2

	high := newTestScorer(narrow, 0.0)
	low := newTestScorer(broad, 0.0)

	fvHigh, ok := high.ScorePair(high.PrepareJob(job), high.PrepareCandidate(candidate))
	require.True(t, ok)
	fvLow, ok := low.ScorePair(low.PrepareJob(job), low.PrepareCandidate(candidate))
	require.True(t, ok)

	assert.Equal(t, fvHigh.BM25Proxy, fvLow.BM25Proxy)
	assert.Greater(t, fvHigh.SkillOverlap, fvLow.SkillOverlap)
	assert.GreaterOrEqual(t, fvHigh.FinalScore, fvLow.FinalScore)
}

func TestScorePair_SynonymExpansionFeedsTitleMatch(t *testing.T) {
	vocab := testVocab()
	vocab.Synonyms = map[string][]string{"golang": {"go"}}
	vocab.Skills = append(vocab.Skills, "go", "golang")
	scorer := newTestScorer(vocab, 0.0)

	job := scorer.PrepareJob(models.Job{Title: "Go Developer", Description: "go api"})
	candidate := scorer.PrepareCandidate(models.Candidate{ResumeText: "golang api services"})

	fv, ok := scorer.ScorePair(job, candidate)
	require.True(t, ok)
	assert.Equal(t, 1.0, fv.TitleMatch)
}

func TestScorePair_EmptyCandidateRejected(t *testing.T) {
	scorer := newTestScorer(testVocab(), 0.25)

	job := scorer.PrepareJob(models.Job{Title: "Backend Engineer", Description: "aws docker"})
	empty := scorer.PrepareCandidate(models.Candidate{})

	_, ok := scorer.ScorePair(job, empty)
	assert.False(t, ok)
}
