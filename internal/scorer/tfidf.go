package scorer

import "math"

// TermFrequencyRows builds one row per sentence mapping each word to
// its occurrence count divided by the sentence's total eligible word
// count. Sentences with no eligible words get an empty row so indexes
// stay aligned.
func TermFrequencyRows(wordLists [][]string) []map[string]float64 {
	rows := make([]map[string]float64, len(wordLists))
	for i, words := range wordLists {
		row := make(map[string]float64, len(words))
		for _, w := range words {
			row[w]++
		}
		if total := float64(len(words)); total > 0 {
			for w, count := range row {
				row[w] = count / total
			}
		}
		rows[i] = row
	}
	return rows
}

// InverseDocumentFrequency computes ln(N/(df+1)) per word, where N is
// the sentence count and df the number of sentences containing the
// word. The +1 smoothing makes the value negative for words present in
// more than N-1 sentences; that is kept as-is rather than clamped.
func InverseDocumentFrequency(rows []map[string]float64) map[string]float64 {
	total := float64(len(rows))
	df := make(map[string]int)
	for _, row := range rows {
		for w := range row {
			df[w]++
		}
	}
	idf := make(map[string]float64, len(df))
	for w, count := range df {
		idf[w] = math.Log(total / float64(count+1))
	}
	return idf
}

// ScoreTFIDF scores each sentence as the sum of tf*idf over the words
// in its row. Empty rows score 0.
func ScoreTFIDF(rows []map[string]float64, idf map[string]float64) map[int]float64 {
	scores := make(map[int]float64, len(rows))
	for i, row := range rows {
		score := 0.0
		for w, tf := range row {
			score += tf * idf[w]
		}
		scores[i] = score
	}
	return scores
}
