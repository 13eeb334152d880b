// Package summarizer implements the extractive summarization engine:
// it tokenizes a document, scores its sentences with the requested
// strategy and reassembles the top-ranked sentences in original order.
package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"text-summarizer/internal/domain"
	"text-summarizer/internal/scorer"
	"text-summarizer/internal/tokenizer"
)

// Hybrid scoring blends TF-IDF, frequency and position maps in that
// order; the weights pair positionally with the maps.
var hybridWeights = []float64{0.5, 0.3, 0.2}

// Engine is the summarization core. It holds no mutable state across
// calls, so a single Engine is safe for concurrent use.
type Engine struct {
	tok *tokenizer.Tokenizer
}

// New creates an engine with the default tokenizer.
func New() *Engine {
	return &Engine{tok: tokenizer.New()}
}

// Tokenizer returns the engine's tokenizer for callers needing raw
// sentence or word counts.
func (e *Engine) Tokenizer() *tokenizer.Tokenizer { return e.tok }

// Summarize selects numSentences sentences from text using the given
// scoring method and joins them, in original document order, with
// single spaces. Documents with at most numSentences sentences are
// returned whole (preprocessed) without scoring.
func (e *Engine) Summarize(text string, numSentences int, method domain.Method) (string, error) {
	text = e.tok.Preprocess(text)
	sentences := e.tok.SplitSentences(text)

	if len(sentences) <= numSentences {
		return text, nil
	}

	wordLists := make([][]string, len(sentences))
	for i, s := range sentences {
		wordLists[i] = e.tok.SplitWords(s)
	}

	scores, err := e.score(wordLists, method)
	if err != nil {
		return "", err
	}

	selected := topIndexes(scores, numSentences)
	// Restore original document order; output is never score order.
	sort.Ints(selected)

	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = sentences[idx]
	}
	return strings.Join(out, " "), nil
}

func (e *Engine) score(wordLists [][]string, method domain.Method) (map[int]float64, error) {
	switch method {
	case domain.MethodFrequency:
		freq := scorer.WordFrequencies(wordLists)
		return scorer.ScoreFrequency(wordLists, freq), nil
	case domain.MethodTFIDF:
		rows := scorer.TermFrequencyRows(wordLists)
		idf := scorer.InverseDocumentFrequency(rows)
		return scorer.ScoreTFIDF(rows, idf), nil
	case domain.MethodPosition:
		return scorer.ScorePosition(len(wordLists)), nil
	case domain.MethodHybrid:
		freq := scorer.WordFrequencies(wordLists)
		rows := scorer.TermFrequencyRows(wordLists)
		idf := scorer.InverseDocumentFrequency(rows)
		return scorer.Combine([]map[int]float64{
			scorer.ScoreTFIDF(rows, idf),
			scorer.ScoreFrequency(wordLists, freq),
			scorer.ScorePosition(len(wordLists)),
		}, hybridWeights), nil
	}
	return nil, fmt.Errorf("unknown method: %q", method)
}

// topIndexes returns the count sentence indexes with the highest
// scores. Ties break toward the lower original index, which keeps
// selection deterministic on flat score maps.
func topIndexes(scores map[int]float64, count int) []int {
	idxs := make([]int, 0, len(scores))
	for idx := range scores {
		idxs = append(idxs, idx)
	}
	sort.Slice(idxs, func(i, j int) bool {
		si, sj := scores[idxs[i]], scores[idxs[j]]
		if si != sj {
			return si > sj
		}
		return idxs[i] < idxs[j]
	})
	if count < 0 {
		count = 0
	}
	if count > len(idxs) {
		count = len(idxs)
	}
	return append([]int(nil), idxs[:count]...)
}
