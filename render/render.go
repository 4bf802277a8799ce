// Package render projects dependency trees into the node/edge shape the
// visualization collaborator consumes.
package render

import (
	"fmt"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

// Node is one renderable token. Id is stable for a given sentence:
// the token text joined with its position.
type Node struct {
	Id     string    `json:"id"`
	Label  string    `json:"label"`
	Pos    token.Pos `json:"pos"`
	Weight float64   `json:"weight"`
}

// Edge is one renderable head→dependent relation between node ids.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Result is the render-ready projection of one parsed sentence. It is
// created once per parse and handed off; the engine does not retain it.
type Result struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Empty returns a well-formed zero result. Nodes and Edges are non-nil so
// the JSON form is {"nodes":[],"edges":[]}.
func Empty() Result {
	return Result{Nodes: []Node{}, Edges: []Edge{}}
}

// FromTree projects a parsed sentence and its tree. The ROOT node carries
// weight 1; every other node carries the weight of its incoming arc.
func FromTree(s token.Sentence, t *tree.Tree) Result {
	all := s.WithRoot()

	res := Result{
		Nodes: make([]Node, 0, len(all)),
		Edges: make([]Edge, 0, t.Len()),
	}

	weights := make([]float64, len(all))
	weights[0] = 1
	for _, a := range t.Arcs() {
		weights[a.Dep] = a.Weight
	}

	for _, tk := range all {
		res.Nodes = append(res.Nodes, Node{
			Id:     NodeId(tk),
			Label:  tk.Text,
			Pos:    tk.Pos,
			Weight: weights[tk.Index],
		})
	}

	for _, a := range t.Arcs() {
		res.Edges = append(res.Edges, Edge{
			Source: NodeId(all[a.Head]),
			Target: NodeId(all[a.Dep]),
			Weight: a.Weight,
		})
	}

	return res
}

// NodeId builds the stable identifier of a token: text plus position.
func NodeId(t token.Token) string {
	return fmt.Sprintf("%s-%d", t.Text, t.Index)
}
