package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/parse"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
)

func defaultScorer() *score.Scorer {
	return score.NewScorer(score.DefaultTable())
}

func tagged(pairs ...any) token.Sentence {
	s := make(token.Sentence, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		s = append(s, token.Token{
			Text:  pairs[i].(string),
			Pos:   pairs[i+1].(token.Pos),
			Index: i/2 + 1,
		})
	}
	return s
}

// theCatSat is the running three-token example: determiner, noun, verb.
func theCatSat() token.Sentence {
	return tagged("the", token.Determiner, "cat", token.Noun, "sat", token.Verb)
}

func sampleSentences() []token.Sentence {
	return []token.Sentence{
		tagged("John", token.Noun, "runs", token.Verb),
		theCatSat(),
		tagged("the", token.Determiner, "old", token.Adjective,
			"cat", token.Noun, "sat", token.Verb,
			"on", token.Preposition, "the", token.Determiner,
			"mat", token.Noun),
		tagged("she", token.Other, "sings", token.Verb,
			"very", token.Adverb, "loudly", token.Adverb),
		tagged("x", token.Pos("UNKNOWN"), "y", token.Pos("SYM"), "z", token.Noun),
		// Adjacent pair whose mutual affinity beats both ROOT arcs.
		tagged("birds", token.Noun, "nearby", token.Adverb),
	}
}

func allParsers(t *testing.T) map[parse.Algorithm]parse.Parser {
	t.Helper()

	parsers := make(map[parse.Algorithm]parse.Parser)
	for _, alg := range parse.Algorithms() {
		p, err := parse.New(alg, defaultScorer())
		require.NoError(t, err)
		parsers[alg] = p
	}
	return parsers
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := parse.New(parse.Algorithm("mystery"), defaultScorer())
	require.Error(t, err)
}

// TestEmptySentence verifies that every parser maps zero tokens to an
// empty tree without error.
func TestEmptySentence(t *testing.T) {
	for alg, p := range allParsers(t) {
		tr, err := p.Parse(nil)
		require.NoError(t, err, alg)
		require.Equal(t, 0, tr.Len(), alg)
		require.Empty(t, tr.Arcs(), alg)
	}
}

// TestSingleToken verifies that a sole token always attaches to ROOT.
func TestSingleToken(t *testing.T) {
	s := tagged("hello", token.Noun)
	for alg, p := range allParsers(t) {
		tr, err := p.Parse(s)
		require.NoError(t, err, alg)
		require.Equal(t, []int{0}, tr.Heads(), alg)
	}
}

// TestSingleHeadedness: every non-ROOT token gets exactly one head,
// under every algorithm.
func TestSingleHeadedness(t *testing.T) {
	for alg, p := range allParsers(t) {
		for _, s := range sampleSentences() {
			tr, err := p.Parse(s)
			require.NoError(t, err, alg)
			require.True(t, tr.SingleHeaded(), "%s: %v", alg, tr.Heads())
			require.Len(t, tr.Arcs(), len(s), alg)
		}
	}
}

// TestAcyclicity: following parent pointers always reaches ROOT.
func TestAcyclicity(t *testing.T) {
	for alg, p := range allParsers(t) {
		for _, s := range sampleSentences() {
			tr, err := p.Parse(s)
			require.NoError(t, err, alg)
			require.True(t, tr.Acyclic(), "%s: %v", alg, tr.Heads())
		}
	}
}

// TestProjectivity: the greedy projective parser never produces
// crossing arcs.
func TestProjectivity(t *testing.T) {
	p, err := parse.New(parse.Eisner, defaultScorer())
	require.NoError(t, err)

	for _, s := range sampleSentences() {
		tr, err := p.Parse(s)
		require.NoError(t, err)
		require.True(t, tr.IsProjective(), "%v", tr.Heads())
	}
}

// TestDeterminism: parsing the same tokens twice yields identical heads.
func TestDeterminism(t *testing.T) {
	for alg, p := range allParsers(t) {
		for _, s := range sampleSentences() {
			first, err := p.Parse(s)
			require.NoError(t, err, alg)
			second, err := p.Parse(s)
			require.NoError(t, err, alg)
			require.Equal(t, first.Heads(), second.Heads(), alg)
		}
	}
}

// TestProjectiveTwoTokens is the John/runs fixture: valid heads, two
// tokens are trivially projective.
func TestProjectiveTwoTokens(t *testing.T) {
	p, err := parse.New(parse.Eisner, defaultScorer())
	require.NoError(t, err)

	tr, err := p.Parse(tagged("John", token.Noun, "runs", token.Verb))
	require.NoError(t, err)

	heads := tr.Heads()
	require.Len(t, heads, 2)
	for _, h := range heads {
		require.GreaterOrEqual(t, h, 0)
		require.LessOrEqual(t, h, 2)
	}
	require.True(t, tr.IsProjective())

	// The noun prefers the nearby verb, the verb prefers ROOT.
	require.Equal(t, []int{2, 0}, heads)
}

// TestArcStandardDeterminerAttachment: in "the cat sat" the determiner
// attaches to the noun and the verb governs the noun.
func TestArcStandardDeterminerAttachment(t *testing.T) {
	p, err := parse.New(parse.ArcStandard, defaultScorer())
	require.NoError(t, err)

	tr, err := p.Parse(theCatSat())
	require.NoError(t, err)

	heads := tr.Heads()
	require.Equal(t, 2, heads[0], "determiner should attach to the noun")
	require.Equal(t, 3, heads[1], "verb should govern the noun")
	require.Equal(t, 0, heads[2], "verb should attach to ROOT")
}

// TestArcStandardArcCount: the transition system yields exactly n arcs.
func TestArcStandardArcCount(t *testing.T) {
	p, err := parse.New(parse.ArcStandard, defaultScorer())
	require.NoError(t, err)

	for _, s := range sampleSentences() {
		tr, err := p.Parse(s)
		require.NoError(t, err)
		require.Len(t, tr.Arcs(), len(s))
	}
}

// TestArborescenceCycleContraction: three tokens engineered so every
// node's best-scoring head forms a ring. The parser must contract the
// cycle and still return a tree.
func TestArborescenceCycleContraction(t *testing.T) {
	table := score.Table{
		{Head: token.Adjective, Dep: token.Noun}: 0.95, // 3 wants to govern 1
		{Head: token.Noun, Dep: token.Verb}:      0.95, // 1 wants to govern 2
		{Head: token.Verb, Dep: token.Adjective}: 0.95, // 2 wants to govern 3
	}
	p, err := parse.New(parse.Arborescence, score.NewScorer(table))
	require.NoError(t, err)

	s := tagged("alpha", token.Noun, "beta", token.Verb, "gamma", token.Adjective)
	tr, err := p.Parse(s)
	require.NoError(t, err)

	require.True(t, tr.SingleHeaded(), "%v", tr.Heads())
	require.True(t, tr.Acyclic(), "naive selection is a 3-cycle; contraction must break it: %v", tr.Heads())

	// The cheapest entry into the ring is ROOT→alpha; the other two keep
	// their preferred in-ring heads.
	require.Equal(t, []int{0, 1, 2}, tr.Heads())
}

// TestArborescenceNestedCycles drives the contraction into recursion:
// two mutually preferring pairs.
func TestArborescenceNestedCycles(t *testing.T) {
	table := score.Table{
		{Head: token.Noun, Dep: token.Verb}:        0.95,
		{Head: token.Verb, Dep: token.Noun}:        0.95,
		{Head: token.Adjective, Dep: token.Adverb}: 0.95,
		{Head: token.Adverb, Dep: token.Adjective}: 0.95,
	}
	p, err := parse.New(parse.Arborescence, score.NewScorer(table))
	require.NoError(t, err)

	s := tagged("a", token.Noun, "b", token.Verb, "c", token.Adjective, "d", token.Adverb)
	tr, err := p.Parse(s)
	require.NoError(t, err)

	require.True(t, tr.SingleHeaded(), "%v", tr.Heads())
	require.True(t, tr.Acyclic(), "%v", tr.Heads())
}

// TestArborescencePrefersStrongEdges: without cycles the result is the
// naive best-in-edge selection.
func TestArborescencePrefersStrongEdges(t *testing.T) {
	p, err := parse.New(parse.Arborescence, defaultScorer())
	require.NoError(t, err)

	tr, err := p.Parse(theCatSat())
	require.NoError(t, err)

	require.Equal(t, []int{2, 3, 0}, tr.Heads())
}

// TestProjectiveFallbackToRoot: a dependent whose candidates all cross
// fixed arcs falls back to ROOT and the tree stays projective.
func TestProjectiveFallbackToRoot(t *testing.T) {
	p, err := parse.New(parse.Eisner, defaultScorer())
	require.NoError(t, err)

	long := tagged(
		"dogs", token.Noun, "bark", token.Verb, "and", token.Other,
		"cats", token.Noun, "meow", token.Verb, "loudly", token.Adverb,
	)
	tr, err := p.Parse(long)
	require.NoError(t, err)

	require.True(t, tr.SingleHeaded())
	require.True(t, tr.IsProjective())
	require.True(t, tr.Acyclic())
}

// TestProjectiveMutualPreference: two adjacent tokens at default
// affinity prefer each other over ROOT (0.409 vs 0.327/0.335). The
// greedy parser must not let them form a ring detached from ROOT: the
// first keeps its preferred head, the second falls back to ROOT.
func TestProjectiveMutualPreference(t *testing.T) {
	p, err := parse.New(parse.Eisner, defaultScorer())
	require.NoError(t, err)

	tr, err := p.Parse(tagged("birds", token.Noun, "nearby", token.Adverb))
	require.NoError(t, err)

	require.True(t, tr.Acyclic(), "%v", tr.Heads())
	require.Equal(t, []int{2, 0}, tr.Heads())
}

// TestProjectiveMutualPreferenceEmbedded: the same pair inside a longer
// sentence still yields a tree rooted at ROOT.
func TestProjectiveMutualPreferenceEmbedded(t *testing.T) {
	p, err := parse.New(parse.Eisner, defaultScorer())
	require.NoError(t, err)

	s := tagged(
		"cats", token.Noun, "here", token.Adverb,
		"purr", token.Verb, "loudly", token.Adverb,
	)
	tr, err := p.Parse(s)
	require.NoError(t, err)

	require.True(t, tr.SingleHeaded(), "%v", tr.Heads())
	require.True(t, tr.Acyclic(), "%v", tr.Heads())
	require.True(t, tr.IsProjective(), "%v", tr.Heads())
}

func BenchmarkParsers(b *testing.B) {
	words := make([]string, 40)
	poses := make([]token.Pos, 40)
	cycle := []token.Pos{token.Determiner, token.Adjective, token.Noun, token.Verb}
	for i := range words {
		words[i] = "w"
		poses[i] = cycle[i%len(cycle)]
	}
	s := token.New(words, poses)

	for _, alg := range parse.Algorithms() {
		p, err := parse.New(alg, defaultScorer())
		if err != nil {
			b.Fatal(err)
		}
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.Parse(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
