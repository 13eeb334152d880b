package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits raw text into sentences and eligible word tokens.
// Stop words and very short tokens are filtered from word output.
type Tokenizer struct {
	whitespace *regexp.Regexp
	nonWord    *regexp.Regexp
	boundary   *regexp.Regexp
	word       *regexp.Regexp
	stopwords  map[string]struct{}
}

// minWordLen is the shortest token (in runes) kept by SplitWords.
const minWordLen = 3

// New creates a tokenizer with the default English stop word set.
func New() *Tokenizer {
	return &Tokenizer{
		whitespace: regexp.MustCompile(`\s+`),
		nonWord:    regexp.MustCompile(`[^\p{L}\p{N}_\s.!?]`),
		boundary:   regexp.MustCompile(`([.!?])\s+`),
		word:       regexp.MustCompile(`[\p{L}\p{N}_]+`),
		stopwords:  defaultStopwords(),
	}
}

// Preprocess collapses runs of whitespace into single spaces and strips
// everything except word characters, whitespace and the sentence
// terminators . ! ? (removing those would break sentence splitting).
func (t *Tokenizer) Preprocess(text string) string {
	text = t.whitespace.ReplaceAllString(text, " ")
	text = t.nonWord.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SplitSentences splits text on a terminal punctuation mark followed by
// whitespace, keeping the mark attached to the preceding sentence.
// Trailing text without a terminator counts as a sentence; pieces that
// are empty after trimming are dropped.
func (t *Tokenizer) SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range t.boundary.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the punctuation group, loc[1] the end
		// of the consumed whitespace.
		s := strings.TrimSpace(text[start:loc[3]])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// SplitWords lowercases a sentence and extracts its eligible tokens in
// order of occurrence. Duplicates are kept; stop words and tokens
// shorter than three runes are not.
func (t *Tokenizer) SplitWords(sentence string) []string {
	raw := t.word.FindAllString(strings.ToLower(sentence), -1)
	var words []string
	for _, w := range raw {
		if utf8.RuneCountInString(w) < minWordLen {
			continue
		}
		if _, ok := t.stopwords[w]; ok {
			continue
		}
		words = append(words, w)
	}
	return words
}
