package scorer

import (
	"math"
	"testing"
)

func TestWordFrequencies_MaxNormalized(t *testing.T) {
	wordLists := [][]string{
		{"apple", "apple", "banana"},
		{"apple", "cherry"},
	}

	freq := WordFrequencies(wordLists)

	if got := freq["apple"]; got != 1.0 {
		t.Errorf("most frequent word should score exactly 1.0, got %v", got)
	}
	if got := freq["banana"]; math.Abs(got-1.0/3.0) > 1e-12 {
		t.Errorf("banana = %v, want 1/3", got)
	}
	if got := freq["cherry"]; math.Abs(got-1.0/3.0) > 1e-12 {
		t.Errorf("cherry = %v, want 1/3", got)
	}
	for w, v := range freq {
		if v < 0 || v > 1 {
			t.Errorf("frequency of %q = %v, want value in [0,1]", w, v)
		}
	}
}

func TestWordFrequencies_Empty(t *testing.T) {
	if got := WordFrequencies(nil); len(got) != 0 {
		t.Errorf("expected empty map for nil input, got %v", got)
	}
	if got := WordFrequencies([][]string{nil, {}}); len(got) != 0 {
		t.Errorf("expected empty map for sentences without words, got %v", got)
	}
}

func TestScoreFrequency(t *testing.T) {
	wordLists := [][]string{
		{"apple", "apple"},
		{"banana"},
		nil,
	}
	freq := WordFrequencies(wordLists) // apple: 1.0, banana: 0.5

	scores := ScoreFrequency(wordLists, freq)

	if got := scores[0]; math.Abs(got-1.0) > 1e-12 {
		t.Errorf("sentence 0 = %v, want 1.0", got)
	}
	if got := scores[1]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("sentence 1 = %v, want 0.5", got)
	}
	if got := scores[2]; got != 0 {
		t.Errorf("sentence without eligible words = %v, want 0", got)
	}
	if len(scores) != 3 {
		t.Errorf("expected one score per sentence, got %d", len(scores))
	}
}

func TestScoreFrequency_MissingWordContributesZero(t *testing.T) {
	scores := ScoreFrequency([][]string{{"unknown", "word"}}, map[string]float64{})
	if got := scores[0]; got != 0 {
		t.Errorf("score with empty frequency map = %v, want 0", got)
	}
}
