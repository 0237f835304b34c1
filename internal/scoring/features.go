package scoring

// SkillOverlap filters each side's token set down to recognized skill terms
// and returns the Jaccard overlap between the filtered sets. A job side with
// no recognized skills scores exactly 0, which is the primary gate for
// excluding irrelevant pairs early.
func SkillOverlap(jobTokens, candidateTokens, skills map[string]bool) float64 {
	jobSkills := filterSkills(jobTokens, skills)
	if len(jobSkills) == 0 {
		return 0.0
	}
	candidateSkills := filterSkills(candidateTokens, skills)

	intersection := 0
	for skill := range jobSkills {
		if candidateSkills[skill] {
			intersection++
		}
	}
	union := len(jobSkills) + len(candidateSkills) - intersection

	return float64(intersection) / float64(max(union, 1))
}

func filterSkills(tokens, skills map[string]bool) map[string]bool {
	filtered := make(map[string]bool)
	for token := range tokens {
		if skills[token] {
			filtered[token] = true
		}
	}
	return filtered
}

// TitleMatch is 1.0 if any token of the job title appears in the candidate's
// expanded token set, else 0.0.
func TitleMatch(titleTokens []string, candidateExpanded map[string]bool) float64 {
	for _, token := range titleTokens {
		if candidateExpanded[token] {
			return 1.0
		}
	}
	return 0.0
}

// SeniorityCompat is a conservative mismatch detector, not a seniority model:
// it returns 0.0 exactly when the job text mentions "senior" and the
// candidate text mentions "junior", and 1.0 in every other case.
func SeniorityCompat(jobTokens, candidateTokens map[string]bool) float64 {
	if jobTokens["senior"] && candidateTokens["junior"] {
		return 0.0
	}
	return 1.0
}
