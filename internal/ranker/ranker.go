// Package ranker orchestrates one matching pass: it loads the anchor
// document, scores it against the full counterpart collection, records every
// qualifying pair, and emits the sorted, truncated result list.
package ranker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/explain"
	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/scoring"
	"github.com/remote-staffing/match-engine/internal/store"
)

// ErrMissingIdentifier is returned when a request names neither a job nor a
// candidate.
var ErrMissingIdentifier = errors.New("either job_id or candidate_id is required")

// Recorder persists one accepted pair across all projections.
type Recorder interface {
	Record(ctx context.Context, pair models.ScoredPair) error
}

type Ranker struct {
	jobs        store.JobStore
	candidates  store.CandidateStore
	scorer      *scoring.Scorer
	recorder    Recorder
	defaultTopN int
	poolSize    int
	logger      *zerolog.Logger
}

func New(
	jobs store.JobStore,
	candidates store.CandidateStore,
	scorer *scoring.Scorer,
	recorder Recorder,
	defaultTopN int,
	poolSize int,
	logger *zerolog.Logger,
) *Ranker {
	return &Ranker{
		jobs:        jobs,
		candidates:  candidates,
		scorer:      scorer,
		recorder:    recorder,
		defaultTopN: defaultTopN,
		poolSize:    poolSize,
		logger:      logger,
	}
}

// Match runs one full matching pass. A request with a job_id ranks
// candidates for that job; otherwise candidates' jobs are ranked via the
// candidate_id. Neither identifier present is a request error. An unknown
// identifier surfaces store.ErrNotFound.
func (r *Ranker) Match(ctx context.Context, req models.MatchRequest) (models.MatchResponse, error) {
	if req.JobID == "" && req.CandidateID == "" {
		return models.MatchResponse{}, ErrMissingIdentifier
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	topN := r.defaultTopN
	if req.TopN != nil && *req.TopN >= 0 {
		topN = *req.TopN
	}

	start := time.Now()

	var (
		mode    models.Mode
		results []models.MatchResult
		err     error
	)
	if req.JobID != "" {
		mode = models.ModeJobToCandidates
		results, err = r.rankCandidates(ctx, requestID, req.JobID)
	} else {
		mode = models.ModeCandidateToJobs
		results, err = r.rankJobs(ctx, requestID, req.CandidateID)
	}
	if err != nil {
		return models.MatchResponse{}, err
	}

	sortResults(results)

	total := len(results)
	if len(results) > topN {
		results = results[:topN]
	}

	r.logger.Info().
		Str("request_id", requestID).
		Str("mode", string(mode)).
		Int("total_matches", total).
		Int("returned", len(results)).
		Dur("duration", time.Since(start)).
		Msg("matching pass complete")

	return models.MatchResponse{
		Mode:         mode,
		TotalMatches: total,
		Matches:      results,
	}, nil
}

func (r *Ranker) rankCandidates(ctx context.Context, requestID, jobID string) ([]models.MatchResult, error) {
	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job lookup %s: %w", jobID, err)
	}
	job = models.NormalizeJob(job)
	jobDoc := r.scorer.PrepareJob(job)

	candidates, err := r.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("candidate scan: %w", err)
	}

	scored := make([]*models.MatchResult, len(candidates))
	runIndexed(r.poolSize, len(candidates), func(i int) {
		candidate := models.NormalizeCandidate(candidates[i])
		fv, ok := r.scorer.ScorePair(jobDoc, r.scorer.PrepareCandidate(candidate))
		if !ok {
			return
		}

		r.record(ctx, requestID, job.JobID, candidate.CandidateID, fv)

		scored[i] = &models.MatchResult{
			CandidateID:  candidate.CandidateID,
			Name:         candidate.Name,
			Email:        candidate.Email,
			MatchPercent: matchPercent(fv.FinalScore),
			Confidence:   explain.Confidence(fv.FinalScore),
			Explanation:  explain.Build(fv),
		}
	})

	return collect(scored), nil
}

func (r *Ranker) rankJobs(ctx context.Context, requestID, candidateID string) ([]models.MatchResult, error) {
	candidate, err := r.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate lookup %s: %w", candidateID, err)
	}
	candidate = models.NormalizeCandidate(candidate)
	candidateDoc := r.scorer.PrepareCandidate(candidate)

	jobs, err := r.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("job scan: %w", err)
	}

	scored := make([]*models.MatchResult, len(jobs))
	runIndexed(r.poolSize, len(jobs), func(i int) {
		job := models.NormalizeJob(jobs[i])
		fv, ok := r.scorer.ScorePair(r.scorer.PrepareJob(job), candidateDoc)
		if !ok {
			return
		}

		r.record(ctx, requestID, job.JobID, candidate.CandidateID, fv)

		scored[i] = &models.MatchResult{
			JobID:        job.JobID,
			Title:        job.Title,
			Company:      job.Company,
			Location:     job.Location,
			ApplyLink:    job.ApplyLink,
			MatchPercent: matchPercent(fv.FinalScore),
			Confidence:   explain.Confidence(fv.FinalScore),
			Explanation:  explain.Build(fv),
		}
	})

	return collect(scored), nil
}

// record persists one qualifying pair before it joins the result list.
// A write failure must not abort the remaining pairs, so it is logged and
// the response still reflects the computed score.
func (r *Ranker) record(ctx context.Context, requestID, jobID, candidateID string, fv models.FeatureVector) {
	pair := models.ScoredPair{
		RequestID:   requestID,
		JobID:       jobID,
		CandidateID: candidateID,
		Features:    fv,
		CreatedAt:   time.Now(),
	}
	if err := r.recorder.Record(ctx, pair); err != nil {
		r.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("job_id", jobID).
			Str("candidate_id", candidateID).
			Msg("failed to record scored pair")
	}
}

func collect(scored []*models.MatchResult) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(scored))
	for _, res := range scored {
		if res != nil {
			results = append(results, *res)
		}
	}
	return results
}

// sortResults orders by match_percent descending, breaking ties by ascending
// counterpart identifier so pagination stays deterministic.
func sortResults(results []models.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchPercent != results[j].MatchPercent {
			return results[i].MatchPercent > results[j].MatchPercent
		}
		return counterpartID(results[i]) < counterpartID(results[j])
	})
}

func counterpartID(res models.MatchResult) string {
	if res.CandidateID != "" {
		return res.CandidateID
	}
	return res.JobID
}

// matchPercent maps a final score onto the 0-100 display scale at one
// decimal place.
func matchPercent(finalScore float64) float64 {
	percent := math.Round(finalScore*1000) / 10
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}
