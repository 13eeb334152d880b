package domain

import "fmt"

// Method selects the sentence scoring strategy used by the engine.
type Method string

const (
	MethodFrequency Method = "frequency"
	MethodTFIDF     Method = "tfidf"
	MethodPosition  Method = "position"
	MethodHybrid    Method = "hybrid"
)

// Methods lists every supported scoring method in display order.
func Methods() []Method {
	return []Method{MethodFrequency, MethodTFIDF, MethodPosition, MethodHybrid}
}

// ParseMethod validates a method name supplied by a caller.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodFrequency, MethodTFIDF, MethodPosition, MethodHybrid:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown method: %q", s)
}

// Stats describes how much a summary compressed the original text.
type Stats struct {
	OriginalWords     int
	SummaryWords      int
	OriginalSentences int
	SummarySentences  int
	CompressionRatio  string
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string, numSentences int, method Method) (string, error)
	Stats(original, summary string) Stats
}

// Tokenizer exposes the raw splitting utilities for callers that need
// word or sentence counts without scoring.
type Tokenizer interface {
	SplitSentences(text string) []string
	SplitWords(sentence string) []string
}
