package token

import "testing"

func TestNewAssignsIndices(t *testing.T) {
	s := New([]string{"a", "b"}, []Pos{Determiner})

	if s[0].Index != 1 || s[1].Index != 2 {
		t.Fatalf("unexpected indices: %+v", s)
	}
	if s[0].Pos != Determiner || s[1].Pos != Other {
		t.Fatalf("unexpected categories: %+v", s)
	}
}

func TestWithRoot(t *testing.T) {
	s := New([]string{"a"}, []Pos{Noun})

	all := s.WithRoot()
	if len(all) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(all))
	}
	if all[0] != Root() {
		t.Fatalf("expected ROOT at position 0, got %+v", all[0])
	}
	if all[1].Index != 1 {
		t.Fatalf("position must equal index, got %+v", all[1])
	}
}

func TestReindex(t *testing.T) {
	s := Sentence{{Text: "a"}, {Text: "b"}}

	out := Reindex(s)
	if out[0].Index != 1 || out[1].Index != 2 {
		t.Fatalf("unexpected indices: %+v", out)
	}
	if s[0].Index != 0 {
		t.Fatal("Reindex must not mutate its input")
	}
}
