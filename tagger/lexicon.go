package tagger

import (
	"strings"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
)

// Lexicon is a deterministic tagger built from closed-class word lists
// and a few suffix heuristics. Open-class words default to Noun. It is
// deliberately small; plug a real tagging service behind the Tagger
// interface for serious use.
type Lexicon struct {
	words map[string]token.Pos
}

var _ Tagger = (*Lexicon)(nil)

// NewLexicon creates the tagger with the built-in word lists.
func NewLexicon() *Lexicon {
	l := &Lexicon{words: make(map[string]token.Pos)}

	add := func(pos token.Pos, words ...string) {
		for _, w := range words {
			l.words[w] = pos
		}
	}

	add(token.Determiner,
		"the", "a", "an", "this", "that", "these", "those",
		"my", "your", "his", "her", "its", "our", "their",
		"some", "any", "no", "every", "each")
	add(token.Preposition,
		"in", "on", "at", "of", "to", "with", "from", "by",
		"for", "about", "over", "under", "into", "through",
		"between", "after", "before", "during")
	add(token.Verb,
		"is", "are", "was", "were", "be", "been", "being",
		"has", "have", "had", "do", "does", "did",
		"go", "goes", "went", "gone", "run", "runs", "ran",
		"sit", "sits", "sat", "see", "sees", "saw", "seen",
		"say", "says", "said", "make", "makes", "made",
		"take", "takes", "took", "get", "gets", "got",
		"can", "could", "will", "would", "may", "might", "must")
	add(token.Adverb,
		"very", "not", "never", "always", "often", "soon",
		"here", "there", "now", "then", "quite", "too")
	add(token.Adjective,
		"good", "bad", "big", "small", "old", "new", "long",
		"short", "high", "low", "hot", "cold", "fast", "slow")
	add(token.Other,
		"and", "or", "but", "if", "so", "because", "while",
		"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "us", "them", "who", "what", "which")

	return l
}

// Tag assigns a category to every word of the sentence and returns the
// tokens with 1-based indices. An empty or all-punctuation sentence
// yields an empty token sequence, not an error.
func (l *Lexicon) Tag(sentence string) (token.Sentence, error) {
	words := Fields(sentence)

	s := make(token.Sentence, 0, len(words))
	for i, w := range words {
		s = append(s, token.Token{
			Text:  w,
			Pos:   l.lookup(w),
			Index: i + 1,
		})
	}
	return s, nil
}

func (l *Lexicon) lookup(word string) token.Pos {
	lower := strings.ToLower(word)
	if pos, ok := l.words[lower]; ok {
		return pos
	}

	switch {
	case strings.HasSuffix(lower, "ly"):
		return token.Adverb
	case strings.HasSuffix(lower, "ful"),
		strings.HasSuffix(lower, "ous"),
		strings.HasSuffix(lower, "ive"),
		strings.HasSuffix(lower, "able"),
		strings.HasSuffix(lower, "ible"):
		return token.Adjective
	case strings.HasSuffix(lower, "ing"),
		strings.HasSuffix(lower, "ed"):
		return token.Verb
	}

	return token.Noun
}
