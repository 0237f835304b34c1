package scoring

// k1 controls term-frequency saturation: repeated shared terms contribute
// diminishing marginal score.
const k1 = 1.5

// RelevanceProxy computes a bounded lexical-overlap score between two token
// multisets. For every term in the union vocabulary the shared frequency
// tf = min(countA, countB) contributes tf*(k1+1)/(tf+k1); the sum is
// normalized by vocabulary breadth so small highly-overlapping vocabularies
// score higher than large sparse ones. The value is a relative relevance
// proxy, not an absolute score.
func RelevanceProxy(a, b []string) float64 {
	countsA := termFrequencies(a)
	countsB := termFrequencies(b)

	vocab := make(map[string]bool, len(countsA)+len(countsB))
	for term := range countsA {
		vocab[term] = true
	}
	for term := range countsB {
		vocab[term] = true
	}

	sum := 0.0
	for term := range vocab {
		tf := min(countsA[term], countsB[term])
		if tf > 0 {
			sum += (float64(tf) * (k1 + 1)) / (float64(tf) + k1)
		}
	}

	return sum / float64(max(len(vocab), 1))
}

func termFrequencies(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}
