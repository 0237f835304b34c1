package scoring

import (
	"github.com/remote-staffing/match-engine/internal/config"
	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/text"
)

// Weights are the fixed contribution factors of the composite score. They
// come from configuration, not from training.
type Weights struct {
	Proxy     float64
	Skill     float64
	Title     float64
	Seniority float64
}

func DefaultWeights() Weights {
	return Weights{Proxy: 0.6, Skill: 0.3, Title: 0.05, Seniority: 0.05}
}

// Document is the tokenized view of one job or candidate, prepared once per
// request side and reused across pairs.
type Document struct {
	Tokens      []string
	TokenSet    map[string]bool
	Expanded    map[string]bool
	TitleTokens []string
}

// Scorer runs the full gated scoring pipeline for one job-candidate pair.
type Scorer struct {
	tokenizer *text.Tokenizer
	expander  *text.Expander
	skills    map[string]bool
	weights   Weights
	coreFloor float64
	minScore  float64
}

func NewScorer(vocab *config.Vocabulary, weights Weights, coreFloor, minScore float64) *Scorer {
	return &Scorer{
		tokenizer: text.NewTokenizer(vocab.StopwordSet()),
		expander:  text.NewExpander(vocab.Synonyms),
		skills:    vocab.SkillSet(),
		weights:   weights,
		coreFloor: coreFloor,
		minScore:  minScore,
	}
}

// PrepareJob tokenizes a normalized job once for scoring against many
// candidates. The title is tokenized independently for the title feature.
func (s *Scorer) PrepareJob(job models.Job) Document {
	return s.prepare(job.Text(), job.Title)
}

// PrepareCandidate tokenizes a normalized candidate's resume text.
func (s *Scorer) PrepareCandidate(c models.Candidate) Document {
	return s.prepare(c.ResumeText, "")
}

func (s *Scorer) prepare(body, title string) Document {
	tokens := s.tokenizer.Tokenize(body)
	return Document{
		Tokens:      tokens,
		TokenSet:    text.ToSet(tokens),
		Expanded:    s.expander.Expand(tokens),
		TitleTokens: s.tokenizer.Tokenize(title),
	}
}

// ScorePair computes the feature vector for one pair, short-circuiting at
// each gate. ok is false when the pair was rejected; rejected pairs produce
// no record and no result entry.
func (s *Scorer) ScorePair(job, candidate Document) (fv models.FeatureVector, ok bool) {
	fv.BM25Proxy = RelevanceProxy(job.Tokens, candidate.Tokens)
	fv.SkillOverlap = SkillOverlap(job.Expanded, candidate.Expanded, s.skills)

	// Gate A: no recognized skill overlap basis
	if fv.SkillOverlap == 0 {
		return fv, false
	}

	fv.LexicalCore = s.weights.Proxy*fv.BM25Proxy + s.weights.Skill*fv.SkillOverlap

	// Gate B: lexical core below floor
	if fv.LexicalCore < s.coreFloor {
		return fv, false
	}

	fv.TitleMatch = TitleMatch(job.TitleTokens, candidate.Expanded)
	fv.SeniorityMatch = SeniorityCompat(job.TokenSet, candidate.TokenSet)
	fv.FinalScore = fv.LexicalCore + s.weights.Title*fv.TitleMatch + s.weights.Seniority*fv.SeniorityMatch

	// Gate C: final score below the configured minimum
	if fv.FinalScore < s.minScore {
		return fv, false
	}

	return fv, true
}
