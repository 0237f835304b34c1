package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/store"
)

func (c *Client) GetCandidate(ctx context.Context, candidateID string) (models.Candidate, error) {
	out, err := c.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tables.Candidates),
		Key: map[string]types.AttributeValue{
			"candidate_id": &types.AttributeValueMemberS{Value: candidateID},
		},
	})
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to get candidate %s: %w", candidateID, err)
	}
	if len(out.Item) == 0 {
		return models.Candidate{}, store.ErrNotFound
	}

	var candidate models.Candidate
	if err := attributevalue.UnmarshalMap(out.Item, &candidate); err != nil {
		return models.Candidate{}, fmt.Errorf("failed to unmarshal candidate %s: %w", candidateID, err)
	}
	return candidate, nil
}

func (c *Client) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate

	paginator := dynamodb.NewScanPaginator(c.db, &dynamodb.ScanInput{
		TableName: aws.String(c.tables.Candidates),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidates table: %w", err)
		}

		var batch []models.Candidate
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidates page: %w", err)
		}
		candidates = append(candidates, batch...)
	}

	return candidates, nil
}
