// Package tree holds the dependency tree structure shared by all parsers,
// plus the structural checks (single-headedness, acyclicity, projectivity)
// that the parsers guarantee and the tests assert.
package tree

// Arc is one directed head→dependent edge.
type Arc struct {
	Head   int     `json:"head"`
	Dep    int     `json:"dep"`
	Weight float64 `json:"weight"`
}

// Tree is a rooted single-head structure over token indices 0..n,
// where 0 is ROOT. parent[j-1] holds the head of token j.
type Tree struct {
	parent  []int
	weights []float64
}

// New creates an empty tree for a sentence of n tokens.
// All heads start unset (-1).
func New(n int) *Tree {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	return &Tree{parent: parent, weights: make([]float64, n)}
}

// Len returns the number of non-ROOT tokens.
func (t *Tree) Len() int { return len(t.parent) }

// Attach sets head as the parent of dependent dep (1-based), recording
// the arc weight. Attaching again overwrites the previous head.
func (t *Tree) Attach(head, dep int, weight float64) {
	t.parent[dep-1] = head
	t.weights[dep-1] = weight
}

// Head returns the parent of token j, or -1 if unset.
func (t *Tree) Head(j int) int { return t.parent[j-1] }

// Heads returns the parent table indexed by dependent-1.
func (t *Tree) Heads() []int {
	out := make([]int, len(t.parent))
	copy(out, t.parent)
	return out
}

// Arcs returns the arc list in dependent order.
func (t *Tree) Arcs() []Arc {
	arcs := make([]Arc, 0, len(t.parent))
	for j, h := range t.parent {
		if h < 0 {
			continue
		}
		arcs = append(arcs, Arc{Head: h, Dep: j + 1, Weight: t.weights[j]})
	}
	return arcs
}

// SingleHeaded reports whether every token 1..n has exactly one head set.
func (t *Tree) SingleHeaded() bool {
	for _, h := range t.parent {
		if h < 0 {
			return false
		}
	}
	return true
}

// Acyclic reports whether following parent pointers from every token
// reaches ROOT in at most n steps without revisiting a node.
func (t *Tree) Acyclic() bool {
	n := len(t.parent)
	for j := 1; j <= n; j++ {
		cur := j
		for steps := 0; cur != 0; steps++ {
			if steps > n {
				return false
			}
			h := t.parent[cur-1]
			if h < 0 || h == cur {
				return false
			}
			cur = h
		}
	}
	return true
}

// Crosses reports whether arcs (h1,d1) and (h2,d2) cross when tokens are
// laid out left to right: one interval strictly straddles exactly one
// endpoint of the other.
func Crosses(h1, d1, h2, d2 int) bool {
	a, b := order(h1, d1)
	c, d := order(h2, d2)
	return (a < c && c < b && b < d) || (c < a && a < d && d < b)
}

// IsProjective reports whether no two arcs of the tree cross.
func (t *Tree) IsProjective() bool {
	arcs := t.Arcs()
	for i := 0; i < len(arcs); i++ {
		for j := i + 1; j < len(arcs); j++ {
			if Crosses(arcs[i].Head, arcs[i].Dep, arcs[j].Head, arcs[j].Dep) {
				return false
			}
		}
	}
	return true
}

func order(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
