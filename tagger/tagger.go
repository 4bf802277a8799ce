// Package tagger defines the boundary to the part-of-speech tagging
// collaborator and ships a small deterministic lexicon tagger for the
// command line surfaces and for tests.
package tagger

import (
	"strings"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
)

// Tagger turns a raw sentence into an ordered token sequence.
//
// It is injected wherever tagging is needed; the engine never reaches for
// a shared tagging singleton. A Tagger may fail per sentence; callers skip
// the sentence and continue.
type Tagger interface {
	Tag(sentence string) (token.Sentence, error)
}

// Func adapts a plain function to the Tagger interface.
type Func func(sentence string) (token.Sentence, error)

func (f Func) Tag(sentence string) (token.Sentence, error) {
	return f(sentence)
}

// FirstSentence returns the first segmented sentence of a text sample.
// Only the first sentence of each sample is parsed; the rest of a
// multi-sentence sample is ignored.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			return strings.TrimSpace(text[:i])
		}
	}
	return text
}

// Fields splits a sentence into word candidates, stripping surrounding
// punctuation. Words that are pure punctuation disappear.
func Fields(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,;:!?\"'()[]")
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
