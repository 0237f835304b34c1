// Package recorder persists the four projections of every scored pair:
// feature vector, canonical match, live match, and history snapshot.
package recorder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/store"
)

type Recorder struct {
	features store.FeatureStore
	matches  store.MatchStore
	live     store.LiveStore
	history  store.HistoryStore
	logger   *zerolog.Logger
}

func New(
	features store.FeatureStore,
	matches store.MatchStore,
	live store.LiveStore,
	history store.HistoryStore,
	logger *zerolog.Logger,
) *Recorder {
	return &Recorder{
		features: features,
		matches:  matches,
		live:     live,
		history:  history,
		logger:   logger,
	}
}

// FormatScore renders a score at fixed 4-decimal precision. Every persisted
// numeric score goes through this one function so all four stores agree on
// the exact decimal representation.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Record writes all four projections for one accepted pair. The writes are
// not ordered relative to each other; the first failure is returned after
// attempting the rest is abandoned.
func (r *Recorder) Record(ctx context.Context, pair models.ScoredPair) error {
	pairKey := store.PairKey(pair.JobID, pair.CandidateID)
	finalScore := FormatScore(pair.Features.FinalScore)

	featureRec := models.FeatureRecord{
		PairKey:        pairKey,
		JobID:          pair.JobID,
		CandidateID:    pair.CandidateID,
		BM25Proxy:      FormatScore(pair.Features.BM25Proxy),
		SkillOverlap:   FormatScore(pair.Features.SkillOverlap),
		TitleMatch:     FormatScore(pair.Features.TitleMatch),
		SeniorityMatch: FormatScore(pair.Features.SeniorityMatch),
		FinalScore:     finalScore,
		CreatedAt:      pair.CreatedAt,
	}
	if err := r.features.PutFeatures(ctx, featureRec); err != nil {
		return fmt.Errorf("feature record write failed: %w", err)
	}

	matchRec := models.MatchRecord{
		PairKey:     pairKey,
		JobID:       pair.JobID,
		CandidateID: pair.CandidateID,
		MatchScore:  finalScore,
		CreatedAt:   pair.CreatedAt,
	}
	if err := r.matches.PutMatch(ctx, matchRec); err != nil {
		return fmt.Errorf("canonical match write failed: %w", err)
	}

	liveRec := models.LiveRecord{
		JobID:       pair.JobID,
		CandidateID: pair.CandidateID,
		MatchScore:  finalScore,
		CreatedAt:   pair.CreatedAt,
	}
	if err := r.live.PutLive(ctx, liveRec); err != nil {
		return fmt.Errorf("live match write failed: %w", err)
	}

	historyRec := models.HistoryRecord{
		ID:          uuid.NewString(),
		RequestID:   pair.RequestID,
		JobID:       pair.JobID,
		CandidateID: pair.CandidateID,
		MatchScore:  finalScore,
		CreatedAt:   pair.CreatedAt,
	}
	if err := r.history.PutHistory(ctx, historyRec); err != nil {
		return fmt.Errorf("history write failed: %w", err)
	}

	r.logger.Debug().
		Str("pair_key", pairKey).
		Str("final_score", finalScore).
		Msg("pair recorded")
	return nil
}
