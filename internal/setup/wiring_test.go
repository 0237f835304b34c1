package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TOP_N", "SCORER_POOL_SIZE", "MIN_SCORE", "CORE_FLOOR", "AWS_REGION"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.DefaultTopN)
	assert.Equal(t, 4, cfg.PoolSize)
	assert.InDelta(t, 0.25, cfg.MinScore, 1e-9)
	assert.InDelta(t, 0.15, cfg.CoreFloor, 1e-9)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TOP_N", "25")
	t.Setenv("SCORER_POOL_SIZE", "8")
	t.Setenv("MIN_SCORE", "0.4")

	cfg := LoadConfig()

	assert.Equal(t, 25, cfg.DefaultTopN)
	assert.Equal(t, 8, cfg.PoolSize)
	assert.InDelta(t, 0.4, cfg.MinScore, 1e-9)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOP_N", "many")
	t.Setenv("MIN_SCORE", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.DefaultTopN)
	assert.InDelta(t, 0.25, cfg.MinScore, 1e-9)
}
