// Package dynamo implements the store contracts on DynamoDB tables.
package dynamo

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Tables names the DynamoDB tables backing each projection.
type Tables struct {
	Jobs       string
	Candidates string
	Features   string
	Matches    string
	History    string
}

type Client struct {
	db     *dynamodb.Client
	tables Tables
}

func New(ctx context.Context, region string, tables Tables) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		db:     dynamodb.NewFromConfig(cfg),
		tables: tables,
	}, nil
}
