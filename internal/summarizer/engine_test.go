package summarizer

import (
	"math"
	"strings"
	"testing"

	"text-summarizer/internal/domain"
	"text-summarizer/internal/scorer"
)

func TestSummarize_ShortDocumentReturnedWhole(t *testing.T) {
	e := New()

	got, err := e.Summarize("Hello   world. Short  text!", 5, domain.MethodHybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fewer sentences than requested: the whole preprocessed text comes
	// back, scoring is bypassed.
	if want := "Hello world. Short text!"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	e := New()

	for _, in := range []string{"", "   \n\t  "} {
		got, err := e.Summarize(in, 3, domain.MethodFrequency)
		if err != nil {
			t.Fatalf("Summarize(%q) returned error: %v", in, err)
		}
		if got != "" {
			t.Errorf("Summarize(%q) = %q, want empty string", in, got)
		}
	}
}

func TestSummarize_UnknownMethod(t *testing.T) {
	e := New()
	text := "One thing happened. Another thing happened. Then more happened. Finally it ended."

	_, err := e.Summarize(text, 1, domain.Method("bogus"))
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !strings.Contains(err.Error(), "unknown method") || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the offending method, got %q", err.Error())
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	e := New()
	text := "Satellites orbit the planet constantly. Ground stations track their signals. " +
		"Engineers adjust trajectories when needed. Weather satellites photograph storms. " +
		"Communication satellites relay broadcasts. Old satellites eventually burn up."

	for _, method := range domain.Methods() {
		first, err := e.Summarize(text, 2, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		second, err := e.Summarize(text, 2, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if first != second {
			t.Errorf("%s: repeated calls differ:\n%q\n%q", method, first, second)
		}
	}
}

func TestSummarize_PreservesOriginalOrder(t *testing.T) {
	e := New()
	text := "Satellites orbit the planet constantly. Ground stations track their signals. " +
		"Engineers adjust trajectories when needed. Weather satellites photograph storms. " +
		"Communication satellites relay broadcasts. Old satellites eventually burn up."

	for _, method := range domain.Methods() {
		summary, err := e.Summarize(text, 3, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		original := e.tok.SplitSentences(e.tok.Preprocess(text))
		picked := e.tok.SplitSentences(summary)
		if len(picked) != 3 {
			t.Fatalf("%s: expected 3 sentences, got %d", method, len(picked))
		}
		last := -1
		for _, s := range picked {
			idx := indexOf(original, s)
			if idx < 0 {
				t.Fatalf("%s: summary sentence %q not found in original", method, s)
			}
			if idx <= last {
				t.Errorf("%s: sentence order not preserved (index %d after %d)", method, idx, last)
			}
			last = idx
		}
	}
}

func TestSummarize_FlatScoreTieBreak(t *testing.T) {
	e := New()
	// Each "sentence" filters to zero eligible words, so frequency and
	// tfidf produce flat all-zero maps and ties decide everything.
	text := "A. B. C. D."

	tests := []struct {
		method domain.Method
		want   string
	}{
		{domain.MethodFrequency, "A. B."},
		{domain.MethodTFIDF, "A. B."},
		{domain.MethodPosition, "A. D."},
		{domain.MethodHybrid, "A. D."},
	}
	for _, tt := range tests {
		got, err := e.Summarize(text, 2, tt.method)
		if err != nil {
			t.Fatalf("%s: %v", tt.method, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestSummarize_FrequencyPicksKeywordDenseSentences(t *testing.T) {
	e := New()
	sentences := []string{
		"The morning valley stayed calm.",
		"Falcons falcons falcons soar above.",
		"Farmers walked along narrow paths.",
		"Children played beside wooden fences.",
		"Rivers carried cold water south.",
		"Falcons falcons falcons soar higher.",
		"Clouds drifted across open fields.",
		"Shepherds gathered sheep near dusk.",
		"Lanterns glowed inside quiet homes.",
		"Falcons falcons falcons soar again.",
		"Travelers rested beneath tall oaks.",
		"Night settled slowly everywhere.",
	}
	text := strings.Join(sentences, " ")

	got, err := e.Summarize(text, 3, domain.MethodFrequency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := sentences[1] + " " + sentences[5] + " " + sentences[9]
	if got != want {
		t.Errorf("got %q, want the three falcon-dense sentences in order %q", got, want)
	}
}

func TestSummarize_HybridMatchesExplicitCombination(t *testing.T) {
	e := New()
	text := "Telescopes gather faint light from distant galaxies. Astronomers catalog each new discovery. " +
		"Galaxies drift apart as space expands. Some telescopes operate far above the atmosphere. " +
		"Discoveries often raise more questions than answers."

	sentences := e.tok.SplitSentences(e.tok.Preprocess(text))
	wordLists := make([][]string, len(sentences))
	for i, s := range sentences {
		wordLists[i] = e.tok.SplitWords(s)
	}

	rows := scorer.TermFrequencyRows(wordLists)
	idf := scorer.InverseDocumentFrequency(rows)
	want := scorer.Combine([]map[int]float64{
		scorer.ScoreTFIDF(rows, idf),
		scorer.ScoreFrequency(wordLists, scorer.WordFrequencies(wordLists)),
		scorer.ScorePosition(len(sentences)),
	}, []float64{0.5, 0.3, 0.2})

	got, err := e.score(wordLists, domain.MethodHybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d scores, want %d", len(got), len(want))
	}
	for idx, w := range want {
		if math.Abs(got[idx]-w) > 1e-12 {
			t.Errorf("index %d: got %v, want %v", idx, got[idx], w)
		}
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
