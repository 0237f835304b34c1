package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/remote-staffing/match-engine/internal/models"
)

// Record items are built by hand rather than through attributevalue so the
// pre-formatted 4-decimal scores land as exact decimal N attributes instead
// of round-tripping through float64.

func (c *Client) PutFeatures(ctx context.Context, rec models.FeatureRecord) error {
	item := map[string]types.AttributeValue{
		"pair_key":        &types.AttributeValueMemberS{Value: rec.PairKey},
		"job_id":          &types.AttributeValueMemberS{Value: rec.JobID},
		"candidate_id":    &types.AttributeValueMemberS{Value: rec.CandidateID},
		"bm25_proxy":      &types.AttributeValueMemberN{Value: rec.BM25Proxy},
		"skill_overlap":   &types.AttributeValueMemberN{Value: rec.SkillOverlap},
		"title_match":     &types.AttributeValueMemberN{Value: rec.TitleMatch},
		"seniority_match": &types.AttributeValueMemberN{Value: rec.SeniorityMatch},
		"final_score":     &types.AttributeValueMemberN{Value: rec.FinalScore},
		"created_at":      &types.AttributeValueMemberS{Value: rec.CreatedAt.UTC().Format(time.RFC3339)},
	}

	if _, err := c.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tables.Features),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put feature record %s: %w", rec.PairKey, err)
	}
	return nil
}

func (c *Client) PutMatch(ctx context.Context, rec models.MatchRecord) error {
	item := map[string]types.AttributeValue{
		"pair_key":     &types.AttributeValueMemberS{Value: rec.PairKey},
		"job_id":       &types.AttributeValueMemberS{Value: rec.JobID},
		"candidate_id": &types.AttributeValueMemberS{Value: rec.CandidateID},
		"match_score":  &types.AttributeValueMemberN{Value: rec.MatchScore},
		"created_at":   &types.AttributeValueMemberS{Value: rec.CreatedAt.UTC().Format(time.RFC3339)},
	}

	if _, err := c.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tables.Matches),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put match record %s: %w", rec.PairKey, err)
	}
	return nil
}

func (c *Client) PutHistory(ctx context.Context, rec models.HistoryRecord) error {
	item := map[string]types.AttributeValue{
		"id":           &types.AttributeValueMemberS{Value: rec.ID},
		"request_id":   &types.AttributeValueMemberS{Value: rec.RequestID},
		"job_id":       &types.AttributeValueMemberS{Value: rec.JobID},
		"candidate_id": &types.AttributeValueMemberS{Value: rec.CandidateID},
		"match_score":  &types.AttributeValueMemberN{Value: rec.MatchScore},
		"created_at":   &types.AttributeValueMemberS{Value: rec.CreatedAt.UTC().Format(time.RFC3339)},
	}

	if _, err := c.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tables.History),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put history record %s: %w", rec.ID, err)
	}
	return nil
}
