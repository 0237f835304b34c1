// Package store defines the persistence contracts the scoring core depends
// on. Read stores expose point lookups plus an enumerate-all capability so an
// indexed retrieval can replace the full scan later without touching the
// scoring code; record stores are write-only from the engine's perspective.
package store

import (
	"context"
	"errors"

	"github.com/remote-staffing/match-engine/internal/models"
)

// ErrNotFound is returned by point lookups when no record exists for the
// given identifier.
var ErrNotFound = errors.New("record not found")

type JobStore interface {
	GetJob(ctx context.Context, jobID string) (models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
}

type CandidateStore interface {
	GetCandidate(ctx context.Context, candidateID string) (models.Candidate, error)
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
}

// FeatureStore upserts the full feature vector keyed by job_id#candidate_id.
type FeatureStore interface {
	PutFeatures(ctx context.Context, rec models.FeatureRecord) error
}

// MatchStore upserts the canonical "current best known match" per pair.
type MatchStore interface {
	PutMatch(ctx context.Context, rec models.MatchRecord) error
}

// LiveStore upserts the fast-access projection keyed by the natural
// (job_id, candidate_id) composite.
type LiveStore interface {
	PutLive(ctx context.Context, rec models.LiveRecord) error
}

// HistoryStore is insert-only; every call writes a fresh record so multiple
// historical snapshots of the same pair coexist.
type HistoryStore interface {
	PutHistory(ctx context.Context, rec models.HistoryRecord) error
}

// PairKey builds the composite key shared by the feature and canonical
// stores.
func PairKey(jobID, candidateID string) string {
	return jobID + "#" + candidateID
}
