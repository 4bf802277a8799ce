// Package score computes preference scores for candidate head→dependent
// arcs from a part-of-speech affinity table and token distance.
package score

import (
	"math"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
)

const (
	// DefaultAffinity applies to any head/dependent pair absent from the
	// table, including unknown categories from the tagging collaborator.
	DefaultAffinity = 0.5

	// decayLength controls the exponential locality decay exp(-d/decayLength).
	decayLength = 5.0
)

// Pair keys the affinity table by head and dependent category.
type Pair struct {
	Head token.Pos
	Dep  token.Pos
}

// Table maps category pairs to a base affinity in [0,1].
// It is a plain configuration value: construct one, hand it to NewScorer,
// and do not mutate it while parsing.
type Table map[Pair]float64

// DefaultTable returns the fixed affinity configuration used when no
// custom linguistic model is supplied.
func DefaultTable() Table {
	return Table{
		{token.ROOT, token.Verb}:        0.95,
		{token.ROOT, token.Noun}:        0.4,
		{token.Verb, token.Noun}:        0.9,
		{token.Verb, token.Adverb}:      0.8,
		{token.Verb, token.Preposition}: 0.6,
		{token.Noun, token.Determiner}:  0.9,
		{token.Noun, token.Adjective}:   0.8,
		{token.Noun, token.Verb}:        0.3,
		{token.Preposition, token.Noun}: 0.7,
		{token.Determiner, token.Noun}:  0.2,
		{token.Adjective, token.Adverb}: 0.6,
		{token.Adverb, token.Adjective}: 0.3,
	}
}

// Scorer scores candidate arcs. All parsers share one Scorer so that
// scores stay comparable across algorithms.
type Scorer struct {
	table Table
}

// NewScorer creates a Scorer over the given affinity table.
// A nil table behaves as an empty one (every pair scores DefaultAffinity).
func NewScorer(t Table) *Scorer {
	return &Scorer{table: t}
}

// Score returns the preference for an arc head→dependent at the given
// absolute token distance. The base affinity is looked up in the table
// (DefaultAffinity for unlisted pairs) and damped by exp(-distance/5).
// Total over all inputs; the result is always in (0, 1].
func (s *Scorer) Score(head, dep token.Pos, distance int) float64 {
	base, ok := s.table[Pair{Head: head, Dep: dep}]
	if !ok {
		base = DefaultAffinity
	}

	if distance < 0 {
		distance = -distance
	}

	return base * math.Exp(-float64(distance)/decayLength)
}

// ScoreArc is a convenience over Score for two indexed tokens.
func (s *Scorer) ScoreArc(head, dep token.Token) float64 {
	return s.Score(head.Pos, dep.Pos, head.Index-dep.Index)
}
