package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remote-staffing/match-engine/internal/models"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Confidence
	}{
		{0.9, models.ConfidenceStrong},
		{0.6, models.ConfidenceStrong},
		{0.59, models.ConfidenceGood},
		{0.4, models.ConfidenceGood},
		{0.39, models.ConfidenceFair},
		{0.0, models.ConfidenceFair},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.score), "score %f", tt.score)
	}
}

func TestBuild_SkillTiers(t *testing.T) {
	tests := []struct {
		name    string
		overlap float64
		want    string
	}{
		{"strong", 0.8, "Strong skill overlap with the role requirements"},
		{"strong boundary", 0.7, "Strong skill overlap with the role requirements"},
		{"moderate", 0.5, "Moderate skill overlap with the role requirements"},
		{"partial", 0.1, "Partial skill overlap with the role requirements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(models.FeatureVector{SkillOverlap: tt.overlap})
			assert.Equal(t, tt.want, got.TopReason)
		})
	}
}

func TestBuild_PriorityOrderAndSecondaryLimit(t *testing.T) {
	fv := models.FeatureVector{
		SkillOverlap:   0.8,
		TitleMatch:     1.0,
		SeniorityMatch: 1.0,
	}

	got := Build(fv)

	assert.Equal(t, "Strong skill overlap with the role requirements", got.TopReason)
	assert.Equal(t, []string{
		"Job title aligns with the profile",
		"Seniority level is compatible",
	}, got.SecondaryReasons)
}

func TestBuild_FallbackReason(t *testing.T) {
	got := Build(models.FeatureVector{})

	assert.Equal(t, fallbackReason, got.TopReason)
	assert.Empty(t, got.SecondaryReasons)
}

func TestBuild_TitleOnly(t *testing.T) {
	got := Build(models.FeatureVector{TitleMatch: 1.0})

	assert.Equal(t, "Job title aligns with the profile", got.TopReason)
	assert.Empty(t, got.SecondaryReasons)
}
