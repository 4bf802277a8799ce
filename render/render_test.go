package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

func catSentence() token.Sentence {
	return token.Sentence{
		{Text: "the", Pos: token.Determiner, Index: 1},
		{Text: "cat", Pos: token.Noun, Index: 2},
	}
}

func TestFromTree(t *testing.T) {
	tr := tree.New(2)
	tr.Attach(2, 1, 0.7)
	tr.Attach(0, 2, 0.3)

	res := FromTree(catSentence(), tr)

	if len(res.Nodes) != 3 {
		t.Fatalf("expected 3 nodes (ROOT included), got %d", len(res.Nodes))
	}
	if res.Nodes[0].Id != "ROOT-0" || res.Nodes[0].Weight != 1 {
		t.Fatalf("unexpected ROOT node: %+v", res.Nodes[0])
	}
	if res.Nodes[1].Id != "the-1" || res.Nodes[1].Weight != 0.7 {
		t.Fatalf("unexpected node: %+v", res.Nodes[1])
	}
	if res.Nodes[2].Pos != token.Noun {
		t.Fatalf("unexpected node: %+v", res.Nodes[2])
	}

	if len(res.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(res.Edges))
	}
	first := res.Edges[0]
	if first.Source != "cat-2" || first.Target != "the-1" || first.Weight != 0.7 {
		t.Fatalf("unexpected edge: %+v", first)
	}
}

func TestEmptyEncodesAsEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(Empty()); err != nil {
		t.Fatal(err)
	}

	got := strings.TrimSpace(buf.String())
	if got != `{"nodes":[],"edges":[]}` {
		t.Fatalf("unexpected encoding: %s", got)
	}
}

func TestJSONRendererRoundTrip(t *testing.T) {
	tr := tree.New(2)
	tr.Attach(2, 1, 0.7)
	tr.Attach(0, 2, 0.3)
	res := FromTree(catSentence(), tr)

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(res); err != nil {
		t.Fatal(err)
	}

	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(decoded.Nodes) != 3 || len(decoded.Edges) != 2 {
		t.Fatalf("unexpected round trip: %+v", decoded)
	}
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.RenderAll([]Result{Empty(), Empty()}); err != nil {
		t.Fatal(err)
	}

	var decoded []Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 results, got %d", len(decoded))
	}
}
