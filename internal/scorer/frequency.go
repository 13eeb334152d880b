// Package scorer implements the sentence scoring strategies used for
// extractive summarization. Every function is pure: it consumes the
// per-sentence word lists produced by the tokenizer and returns a map
// from sentence index to score, freshly allocated per call.
package scorer

// WordFrequencies accumulates raw counts of every eligible token across
// all sentences and max-normalizes them, so the most frequent word in
// the document always maps to exactly 1.0. An empty document yields an
// empty map.
func WordFrequencies(wordLists [][]string) map[string]float64 {
	freq := make(map[string]float64)
	for _, words := range wordLists {
		for _, w := range words {
			freq[w]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for w, v := range freq {
			freq[w] = v / maxF
		}
	}
	return freq
}

// ScoreFrequency scores each sentence as the sum of its words'
// normalized frequencies divided by its word count, so long sentences
// are not favored. Sentences with no eligible words score 0.
func ScoreFrequency(wordLists [][]string, freq map[string]float64) map[int]float64 {
	scores := make(map[int]float64, len(wordLists))
	for i, words := range wordLists {
		score := 0.0
		for _, w := range words {
			score += freq[w]
		}
		if len(words) > 0 {
			scores[i] = score / float64(len(words))
		} else {
			scores[i] = 0
		}
	}
	return scores
}
