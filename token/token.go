package token

// Pos is a coarse part-of-speech category assigned by a tagging collaborator.
//
// The engine knows the categories below, but any other string is accepted
// and scored with the default affinity. Tags are never rejected.
type Pos string

const (
	Noun        Pos = "Noun"
	Verb        Pos = "Verb"
	Adjective   Pos = "Adjective"
	Adverb      Pos = "Adverb"
	Determiner  Pos = "Determiner"
	Preposition Pos = "Preposition"
	ROOT        Pos = "ROOT"
	Other       Pos = "Other"
)

// Token represents a word of the sentence, with POS and position.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	Pos Pos `json:"pos"`

	// The index of the word in the sentence, starting at 1.
	// Index 0 is reserved for the synthetic ROOT token.
	Index int `json:"index"`
}

// Sentence is an ordered sequence of tokens, indices 1..len.
// It never contains the ROOT token; parsers prepend it themselves.
type Sentence []Token

// Root is the synthetic token anchoring every dependency tree at index 0.
func Root() Token {
	return Token{Text: "ROOT", Pos: ROOT, Index: 0}
}

// New builds a Sentence from tagged words, assigning 1-based indices in
// order. The pos slice may be shorter than words; missing entries get Other.
func New(words []string, pos []Pos) Sentence {
	s := make(Sentence, 0, len(words))
	for i, w := range words {
		p := Other
		if i < len(pos) {
			p = pos[i]
		}
		s = append(s, Token{Text: w, Pos: p, Index: i + 1})
	}
	return s
}

// Reindex returns a copy of s with indices rewritten to 1..len(s).
// Tagging collaborators are not required to set Index themselves.
func Reindex(s Sentence) Sentence {
	out := make(Sentence, len(s))
	for i, t := range s {
		t.Index = i + 1
		out[i] = t
	}
	return out
}

// WithRoot returns the sentence prefixed by the ROOT token, so that
// position k of the result holds the token with Index k.
func (s Sentence) WithRoot() []Token {
	out := make([]Token, 0, len(s)+1)
	out = append(out, Root())
	out = append(out, s...)
	return out
}
