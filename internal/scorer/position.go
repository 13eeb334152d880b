package scorer

// ScorePosition assigns importance purely by sentence index: the first
// sentence gets 1.0, the last 0.8 and everything between 0.5. The
// first-sentence check runs before the last-sentence check, so a
// single-sentence document scores 1.0, not 0.8.
func ScorePosition(sentenceCount int) map[int]float64 {
	scores := make(map[int]float64, sentenceCount)
	for i := 0; i < sentenceCount; i++ {
		switch {
		case i == 0:
			scores[i] = 1.0
		case i == sentenceCount-1:
			scores[i] = 0.8
		default:
			scores[i] = 0.5
		}
	}
	return scores
}
