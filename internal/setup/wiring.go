package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/config"
	"github.com/remote-staffing/match-engine/internal/ranker"
	"github.com/remote-staffing/match-engine/internal/recorder"
	redisconn "github.com/remote-staffing/match-engine/internal/redis"
	"github.com/remote-staffing/match-engine/internal/scoring"
	"github.com/remote-staffing/match-engine/internal/store/dynamo"
	"github.com/remote-staffing/match-engine/internal/store/redislive"
)

type Config struct {
	AWSRegion       string
	JobsTable       string
	CandidatesTable string
	FeaturesTable   string
	MatchesTable    string
	HistoryTable    string
	RedisAddr       string
	RedisPassword   string
	CORSOrigin      string
	MinScore        float64
	CoreFloor       float64
	DefaultTopN     int
	PoolSize        int
	ProxyWeight     float64
	SkillWeight     float64
	TitleWeight     float64
	SeniorityWeight float64
}

type Dependencies struct {
	Ranker *ranker.Ranker
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	defaults := scoring.DefaultWeights()
	return &Config{
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		JobsTable:       getEnv("JOBS_TABLE", "Jobs"),
		CandidatesTable: getEnv("CANDIDATES_TABLE", "Candidates"),
		FeaturesTable:   getEnv("FEATURES_TABLE", "MatchFeatures"),
		MatchesTable:    getEnv("MATCHES_TABLE", "Matches"),
		HistoryTable:    getEnv("HISTORY_TABLE", "MatchHistory"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		MinScore:        getEnvFloat("MIN_SCORE", 0.25),
		CoreFloor:       getEnvFloat("CORE_FLOOR", 0.15),
		DefaultTopN:     getEnvInt("TOP_N", 5),
		PoolSize:        getEnvInt("SCORER_POOL_SIZE", 4),
		ProxyWeight:     getEnvFloat("PROXY_WEIGHT", defaults.Proxy),
		SkillWeight:     getEnvFloat("SKILL_WEIGHT", defaults.Skill),
		TitleWeight:     getEnvFloat("TITLE_WEIGHT", defaults.Title),
		SeniorityWeight: getEnvFloat("SENIORITY_WEIGHT", defaults.Seniority),
	}
}

// Wire builds the full pipeline against DynamoDB tables and the Redis live
// projection.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	dynamoClient, err := dynamo.New(ctx, cfg.AWSRegion, dynamo.Tables{
		Jobs:       cfg.JobsTable,
		Candidates: cfg.CandidatesTable,
		Features:   cfg.FeaturesTable,
		Matches:    cfg.MatchesTable,
		History:    cfg.HistoryTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	redisClient, err := redisconn.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	liveStore := redislive.New(redisClient)

	vocab, err := config.LoadVocabulary()
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	scorer := scoring.NewScorer(vocab, scoring.Weights{
		Proxy:     cfg.ProxyWeight,
		Skill:     cfg.SkillWeight,
		Title:     cfg.TitleWeight,
		Seniority: cfg.SeniorityWeight,
	}, cfg.CoreFloor, cfg.MinScore)

	rec := recorder.New(dynamoClient, dynamoClient, liveStore, dynamoClient, logger)

	rnk := ranker.New(
		dynamoClient,
		dynamoClient,
		scorer,
		rec,
		cfg.DefaultTopN,
		cfg.PoolSize,
		logger,
	)

	return &Dependencies{
		Ranker: rnk,
		Logger: logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
