package parse

import (
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

// Projective builds a single-head tree whose arcs never cross.
//
// It is a greedy, order-dependent approximation in the Eisner tradition,
// not the O(n³) complete/incomplete-span dynamic program: dependents are
// fixed left to right, each taking the best head compatible with the arcs
// already chosen. The result is always projective but not guaranteed to be
// globally score-optimal.
type Projective struct {
	Scorer *score.Scorer
}

// Parse attaches every token to its best projectivity-compatible head.
// Tokens with no compatible candidate fall back to ROOT; a single-token
// sentence always attaches to ROOT.
func (p *Projective) Parse(s token.Sentence) (*tree.Tree, error) {
	n := len(s)
	t := tree.New(n)
	if n == 0 {
		return t, nil
	}

	m := scoreMatrix(p.Scorer, s)

	for j := 1; j <= n; j++ {
		bestHead := -1
		bestScore := 0.0

		for i := 0; i <= n; i++ {
			if i == j {
				continue
			}
			if m[i][j] <= bestScore {
				continue
			}
			if crossesFixed(t, i, j) {
				continue
			}
			if i >= 1 && descends(t, i, j) {
				continue
			}
			bestHead = i
			bestScore = m[i][j]
		}

		// No candidate is projectivity-compatible: fall back to ROOT.
		if bestHead < 0 {
			bestHead = 0
			bestScore = m[0][j]
		}

		t.Attach(bestHead, j, bestScore)
	}

	return t, nil
}

// descends reports whether node is already below dep in the partially
// built tree. Attaching dep under such a head would close a cycle cut
// off from ROOT, since both arcs of a mutual pair share their endpoints
// and never register as crossing.
func descends(t *tree.Tree, node, dep int) bool {
	for cur := node; cur > 0; cur = t.Head(cur) {
		if cur == dep {
			return true
		}
	}
	return false
}

// crossesFixed reports whether the candidate arc (head, dep) crosses any
// arc already fixed for a smaller dependent.
func crossesFixed(t *tree.Tree, head, dep int) bool {
	for _, a := range t.Arcs() {
		if tree.Crosses(head, dep, a.Head, a.Dep) {
			return true
		}
	}
	return false
}
