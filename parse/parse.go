// Package parse implements the three dependency parsing algorithms:
// a greedy projective parser, a maximum-arborescence parser and an
// arc-standard transition parser. All three consume the same arc scorer
// and produce the same single-head tree shape.
package parse

import (
	"fmt"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

// Algorithm selects one of the parsing strategies.
type Algorithm string

const (
	// Eisner is the greedy projective parser. The name records the
	// lineage of the approach; see the doc comment in projective.go for
	// how it differs from the textbook span-based dynamic program.
	Eisner Algorithm = "eisner"

	// Arborescence is the Chu-Liu/Edmonds style maximum-arborescence
	// parser, without a projectivity constraint.
	Arborescence Algorithm = "arborescence"

	// ArcStandard is the transition-based shift/reduce parser.
	ArcStandard Algorithm = "arc-standard"
)

// Algorithms returns the supported algorithm names.
func Algorithms() []Algorithm {
	return []Algorithm{Eisner, Arborescence, ArcStandard}
}

// Parser builds a dependency tree over one tagged sentence.
// Implementations are deterministic and never fail on valid input;
// an empty sentence yields an empty tree.
type Parser interface {
	Parse(s token.Sentence) (*tree.Tree, error)
}

// New returns the parser for the given algorithm, all sharing the scorer.
func New(alg Algorithm, sc *score.Scorer) (Parser, error) {
	switch alg {
	case Eisner:
		return &Projective{Scorer: sc}, nil
	case Arborescence:
		return &MaxArborescence{Scorer: sc}, nil
	case ArcStandard:
		return &Transition{Scorer: sc}, nil
	}

	return nil, fmt.Errorf("unknown algorithm: %s", alg)
}

// scoreMatrix precomputes score[i][j] for every ordered pair of positions
// in 0..n, where position 0 is ROOT. The diagonal stays zero.
func scoreMatrix(sc *score.Scorer, s token.Sentence) [][]float64 {
	all := s.WithRoot()
	n := len(all)

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i == j {
				continue
			}
			m[i][j] = sc.ScoreArc(all[i], all[j])
		}
	}
	return m
}
