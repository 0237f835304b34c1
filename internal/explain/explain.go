// Package explain converts feature vectors into the human-readable
// explanation surfaced with each match. It never re-derives scores.
package explain

import (
	"github.com/remote-staffing/match-engine/internal/models"
)

const (
	strongConfidenceFloor = 0.6
	goodConfidenceFloor   = 0.4

	strongSkillFloor   = 0.7
	moderateSkillFloor = 0.4
)

const fallbackReason = "Relevant overall text similarity with the posting"

// Confidence maps a final score onto the three-tier display label.
func Confidence(finalScore float64) models.Confidence {
	switch {
	case finalScore >= strongConfidenceFloor:
		return models.ConfidenceStrong
	case finalScore >= goodConfidenceFloor:
		return models.ConfidenceGood
	default:
		return models.ConfidenceFair
	}
}

// Build produces the ranked reason list for one scored pair. Reasons are
// evaluated in fixed priority order: skill tier, then title alignment, then
// seniority fit; a generic fallback covers pairs where nothing qualifies.
func Build(fv models.FeatureVector) models.Explanation {
	var reasons []string

	switch {
	case fv.SkillOverlap >= strongSkillFloor:
		reasons = append(reasons, "Strong skill overlap with the role requirements")
	case fv.SkillOverlap >= moderateSkillFloor:
		reasons = append(reasons, "Moderate skill overlap with the role requirements")
	case fv.SkillOverlap > 0:
		reasons = append(reasons, "Partial skill overlap with the role requirements")
	}

	if fv.TitleMatch > 0 {
		reasons = append(reasons, "Job title aligns with the profile")
	}

	if fv.SeniorityMatch > 0 {
		reasons = append(reasons, "Seniority level is compatible")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}

	explanation := models.Explanation{
		TopReason:        reasons[0],
		SecondaryReasons: []string{},
	}
	if len(reasons) > 1 {
		end := min(len(reasons), 3)
		explanation.SecondaryReasons = reasons[1:end]
	}
	return explanation
}
