// Package memory provides in-memory store implementations used by tests and
// local runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/store"
)

type Store struct {
	mu         sync.RWMutex
	jobs       map[string]models.Job
	candidates map[string]models.Candidate
	features   map[string]models.FeatureRecord
	matches    map[string]models.MatchRecord
	live       map[string]models.LiveRecord
	history    []models.HistoryRecord
}

func New() *Store {
	return &Store{
		jobs:       make(map[string]models.Job),
		candidates: make(map[string]models.Candidate),
		features:   make(map[string]models.FeatureRecord),
		matches:    make(map[string]models.MatchRecord),
		live:       make(map[string]models.LiveRecord),
	}
}

func (s *Store) AddJob(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = job
}

func (s *Store) AddCandidate(c models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.CandidateID] = c
}

func (s *Store) GetJob(_ context.Context, jobID string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return models.Job{}, store.ErrNotFound
	}
	return job, nil
}

func (s *Store) ListJobs(_ context.Context) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].JobID < jobs[j].JobID })
	return jobs, nil
}

func (s *Store) GetCandidate(_ context.Context, candidateID string) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[candidateID]
	if !ok {
		return models.Candidate{}, store.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListCandidates(_ context.Context) ([]models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidates := make([]models.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].CandidateID < candidates[j].CandidateID })
	return candidates, nil
}

func (s *Store) PutFeatures(_ context.Context, rec models.FeatureRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features[rec.PairKey] = rec
	return nil
}

func (s *Store) PutMatch(_ context.Context, rec models.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[rec.PairKey] = rec
	return nil
}

func (s *Store) PutLive(_ context.Context, rec models.LiveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[store.PairKey(rec.JobID, rec.CandidateID)] = rec
	return nil
}

func (s *Store) PutHistory(_ context.Context, rec models.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, rec)
	return nil
}

// Inspection helpers for tests.

func (s *Store) Features(pairKey string) (models.FeatureRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.features[pairKey]
	return rec, ok
}

func (s *Store) Match(pairKey string) (models.MatchRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.matches[pairKey]
	return rec, ok
}

func (s *Store) Live(pairKey string) (models.LiveRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.live[pairKey]
	return rec, ok
}

func (s *Store) History() []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HistoryRecord, len(s.history))
	copy(out, s.history)
	return out
}
