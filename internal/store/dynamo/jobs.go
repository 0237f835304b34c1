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

func (c *Client) GetJob(ctx context.Context, jobID string) (models.Job, error) {
	out, err := c.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tables.Jobs),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return models.Job{}, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	if len(out.Item) == 0 {
		return models.Job{}, store.ErrNotFound
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(out.Item, &job); err != nil {
		return models.Job{}, fmt.Errorf("failed to unmarshal job %s: %w", jobID, err)
	}
	return job, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job

	paginator := dynamodb.NewScanPaginator(c.db, &dynamodb.ScanInput{
		TableName: aws.String(c.tables.Jobs),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan jobs table: %w", err)
		}

		var batch []models.Job
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal jobs page: %w", err)
		}
		jobs = append(jobs, batch...)
	}

	return jobs, nil
}
