package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/ranker"
	redisconn "github.com/remote-staffing/match-engine/internal/redis"
	streamredis "github.com/remote-staffing/match-engine/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis for now; kafka, sqs later
	RedisConfig *streamredis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	rnk *ranker.Ranker,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redisconn.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
		)
		if err != nil {
			return nil, err
		}

		return streamredis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			rnk,
			logger,
		), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
