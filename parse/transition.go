package parse

import (
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/token"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tree"
)

// reduceThreshold is the minimum score an arc transition must clear to be
// taken while the buffer still holds tokens.
const reduceThreshold = 0.3

// Transition is the arc-standard shift/reduce parser: an explicit state
// machine over a stack (starting as [ROOT]) and a buffer of the remaining
// token indices. Every token is shifted once and reduced once, so a
// sentence of n tokens takes at most 2n transitions and yields exactly
// n arcs.
type Transition struct {
	Scorer *score.Scorer
}

// Parse runs the transition system to completion.
func (p *Transition) Parse(s token.Sentence) (*tree.Tree, error) {
	n := len(s)
	t := tree.New(n)
	if n == 0 {
		return t, nil
	}

	m := scoreMatrix(p.Scorer, s)

	stack := []int{0}
	next := 1 // head of the buffer

	for {
		if len(stack) < 2 {
			if next > n {
				break
			}
			stack = append(stack, next) // SHIFT
			next++
			continue
		}

		top := stack[len(stack)-1]
		second := stack[len(stack)-2]

		rightScore := m[second][top]
		leftScore := m[top][second]

		switch {
		case rightScore > leftScore && rightScore > reduceThreshold:
			// RIGHT-ARC: second governs top.
			t.Attach(second, top, rightScore)
			stack = stack[:len(stack)-1]

		case leftScore > reduceThreshold && second != 0:
			// LEFT-ARC: top governs second. ROOT can never be a dependent.
			t.Attach(top, second, leftScore)
			stack = append(stack[:len(stack)-2], top)

		case next <= n:
			stack = append(stack, next) // SHIFT
			next++

		default:
			// Buffer exhausted with no transition clearing the
			// threshold: force the larger of the two. Ties and a ROOT
			// second resolve to RIGHT-ARC.
			if leftScore > rightScore && second != 0 {
				t.Attach(top, second, leftScore)
				stack = append(stack[:len(stack)-2], top)
			} else {
				t.Attach(second, top, rightScore)
				stack = stack[:len(stack)-1]
			}
		}
	}

	return t, nil
}
