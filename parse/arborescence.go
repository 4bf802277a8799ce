package parse

import (
	"math"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

// MaxArborescence builds the maximum-weight spanning arborescence rooted
// at ROOT, with no projectivity constraint (Chu-Liu/Edmonds).
//
// Selection starts from the naive per-dependent best-in-edge choice; when
// that choice contains a cycle (three tokens mutually preferring each
// other, for example), the cycle is contracted to a pseudo-node with
// adjusted incoming weights, the reduced problem is solved recursively,
// and the cycle is broken at the edge the winning entry replaces. The
// output is therefore always a tree.
type MaxArborescence struct {
	Scorer *score.Scorer
}

// Parse computes the arborescence for the sentence. ROOT is never a
// dependent; a single-token sentence attaches to ROOT.
func (p *MaxArborescence) Parse(s token.Sentence) (*tree.Tree, error) {
	n := len(s)
	t := tree.New(n)
	if n == 0 {
		return t, nil
	}

	m := scoreMatrix(p.Scorer, s)
	parent := maxSpanning(m)

	for j := 1; j <= n; j++ {
		t.Attach(parent[j], j, m[parent[j]][j])
	}

	return t, nil
}

// maxSpanning computes the maximum spanning arborescence of a dense weight
// matrix over nodes 0..len(w)-1 rooted at node 0. Entries may be -Inf for
// absent edges (they appear in contracted subproblems). Returns the parent
// of every node; parent[0] is -1.
func maxSpanning(w [][]float64) []int {
	bestIn := bestInEdges(w)

	cycle := findCycle(bestIn)
	if cycle == nil {
		return bestIn
	}

	n := len(w)
	inCycle := make([]bool, n)
	for _, v := range cycle {
		inCycle[v] = true
	}

	// Relabel: nodes outside the cycle keep their relative order (the
	// root stays 0, it can never sit on a cycle); the whole cycle
	// becomes one pseudo-node c.
	id := make([]int, n)
	next := 0
	for v := 0; v < n; v++ {
		if inCycle[v] {
			id[v] = -1
			continue
		}
		id[v] = next
		next++
	}
	c := next
	n2 := next + 1

	w2 := make([][]float64, n2)
	for i := range w2 {
		w2[i] = make([]float64, n2)
		for j := range w2[i] {
			w2[i][j] = math.Inf(-1)
		}
	}

	// enterDep[u2] is the cycle node the edge (u2, c) would attach;
	// leaveHead[v2] is the cycle node the edge (c, v2) leaves from.
	enterDep := make([]int, n2)
	leaveHead := make([]int, n2)

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || math.IsInf(w[u][v], -1) {
				continue
			}
			switch {
			case !inCycle[u] && inCycle[v]:
				// Entering the cycle replaces the in-cycle edge of v.
				adj := w[u][v] - w[bestIn[v]][v]
				if adj > w2[id[u]][c] {
					w2[id[u]][c] = adj
					enterDep[id[u]] = v
				}
			case inCycle[u] && !inCycle[v]:
				if w[u][v] > w2[c][id[v]] {
					w2[c][id[v]] = w[u][v]
					leaveHead[id[v]] = u
				}
			case !inCycle[u] && !inCycle[v]:
				if w[u][v] > w2[id[u]][id[v]] {
					w2[id[u]][id[v]] = w[u][v]
				}
			}
		}
	}

	parent2 := maxSpanning(w2)

	orig := make([]int, n2)
	for v := 0; v < n; v++ {
		if id[v] >= 0 {
			orig[id[v]] = v
		}
	}

	parent := make([]int, n)
	parent[0] = -1

	// The dependent inside the cycle that the winning entry edge claims;
	// every other cycle node keeps its in-cycle head.
	entryDep := -1
	for v2 := 1; v2 < n2; v2++ {
		p2 := parent2[v2]
		if v2 == c {
			entryDep = enterDep[p2]
			parent[entryDep] = orig[p2]
			continue
		}
		if p2 == c {
			parent[orig[v2]] = leaveHead[v2]
			continue
		}
		parent[orig[v2]] = orig[p2]
	}

	for _, v := range cycle {
		if v == entryDep {
			continue
		}
		parent[v] = bestIn[v]
	}

	return parent
}

// bestInEdges is the naive selection: every dependent independently takes
// its highest-scoring head. No edge ever enters the root.
func bestInEdges(w [][]float64) []int {
	n := len(w)
	parent := make([]int, n)
	parent[0] = -1
	for j := 1; j < n; j++ {
		best := -1
		for i := 0; i < n; i++ {
			if i == j || math.IsInf(w[i][j], -1) {
				continue
			}
			if best < 0 || w[i][j] > w[best][j] {
				best = i
			}
		}
		parent[j] = best
	}
	return parent
}

// findCycle returns one cycle in the parent selection, or nil.
func findCycle(parent []int) []int {
	n := len(parent)
	state := make([]int, n) // 0 unvisited, 1 on current walk, 2 settled
	state[0] = 2

	for start := 1; start < n; start++ {
		if state[start] != 0 {
			continue
		}

		var path []int
		v := start
		for state[v] == 0 {
			state[v] = 1
			path = append(path, v)
			v = parent[v]
		}

		if state[v] == 1 {
			i := len(path) - 1
			for path[i] != v {
				i--
			}
			return path[i:]
		}

		for _, u := range path {
			state[u] = 2
		}
	}

	return nil
}
