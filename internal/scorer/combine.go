package scorer

// Combine linearly blends score maps, pairing each map with the weight
// at the same position. A nil weights slice means 1.0 per map. Indexes
// missing from an input map contribute 0 to the blend.
func Combine(scoreMaps []map[int]float64, weights []float64) map[int]float64 {
	if weights == nil {
		weights = make([]float64, len(scoreMaps))
		for i := range weights {
			weights[i] = 1.0
		}
	}
	n := len(scoreMaps)
	if len(weights) < n {
		n = len(weights)
	}
	combined := make(map[int]float64)
	for i := 0; i < n; i++ {
		for idx, score := range scoreMaps[i] {
			combined[idx] += score * weights[i]
		}
	}
	return combined
}
