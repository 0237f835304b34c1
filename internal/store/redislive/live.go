// Package redislive implements the live-record store on Redis. The live
// projection exists for fast reads by the serving layer, so it lives in the
// cache tier rather than in DynamoDB.
package redislive

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remote-staffing/match-engine/internal/models"
)

const keyPrefix = "match:live:"

type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// PutLive upserts the pair's live record as a hash keyed by the natural
// (job_id, candidate_id) composite.
func (s *Store) PutLive(ctx context.Context, rec models.LiveRecord) error {
	key := keyPrefix + rec.JobID + ":" + rec.CandidateID

	err := s.client.HSet(ctx, key, map[string]any{
		"job_id":       rec.JobID,
		"candidate_id": rec.CandidateID,
		"match_score":  rec.MatchScore,
		"created_at":   rec.CreatedAt.UTC().Format(time.RFC3339),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to write live record %s: %w", key, err)
	}
	return nil
}
