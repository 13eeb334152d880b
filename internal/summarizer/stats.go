package summarizer

import (
	"fmt"
	"strings"

	"text-summarizer/internal/domain"
)

// Stats reports word and sentence counts for the original text and its
// summary plus the compression ratio. Words are counted by whitespace
// splitting, deliberately ignoring the tokenizer's eligibility filter;
// sentences use the tokenizer's splitter on both raw texts.
func (e *Engine) Stats(original, summary string) domain.Stats {
	originalWords := len(strings.Fields(original))
	summaryWords := len(strings.Fields(summary))

	ratio := 0.0
	if originalWords > 0 {
		ratio = (1 - float64(summaryWords)/float64(originalWords)) * 100
	}

	return domain.Stats{
		OriginalWords:     originalWords,
		SummaryWords:      summaryWords,
		OriginalSentences: len(e.tok.SplitSentences(original)),
		SummarySentences:  len(e.tok.SplitSentences(summary)),
		CompressionRatio:  fmt.Sprintf("%.1f%%", ratio),
	}
}
