package revis

import (
	rsyntax "github.com/quasilyte/regex/syntax"
)

// CaptureGroup describes one capturing group found in a pattern's AST.
type CaptureGroup struct {
	// Index is the 1-based capture index, assigned in opening-parenthesis
	// order.
	Index int
	// Depth is the structural nesting depth: 0 at the root, +1 for every
	// enclosing concatenation, alternation, repetition, or group.
	Depth int
	// Span is the byte range of the whole group in the pattern, including
	// its parentheses but not any trailing quantifier.
	Span Span
}

type walkFrame struct {
	depth int
	expr  *rsyntax.Expr
}

// captureGroups walks the AST left to right and returns a descriptor for
// every capturing group. Non-capturing groups are descended into
// transparently; leaves contribute nothing. An explicit work stack bounds
// the recursion depth on adversarial patterns.
func captureGroups(root rsyntax.Expr) []CaptureGroup {
	var groups []CaptureGroup
	stack := []walkFrame{{depth: 0, expr: &root}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := frame.expr

		switch e.Op {
		case rsyntax.OpCapture, rsyntax.OpNamedCapture:
			groups = append(groups, CaptureGroup{
				Index: len(groups) + 1,
				Depth: frame.depth,
				Span:  Span{Start: int(e.Begin()), End: int(e.End())},
			})
			stack = append(stack, walkFrame{depth: frame.depth + 1, expr: &e.Args[0]})

		case rsyntax.OpGroup, rsyntax.OpGroupWithFlags:
			stack = append(stack, walkFrame{depth: frame.depth + 1, expr: &e.Args[0]})

		case rsyntax.OpConcat, rsyntax.OpAlt:
			// Push in reverse so the leftmost child is popped first.
			for i := len(e.Args) - 1; i >= 0; i-- {
				stack = append(stack, walkFrame{depth: frame.depth + 1, expr: &e.Args[i]})
			}

		case rsyntax.OpRepeat:
			// Args[1] holds the {n,m} spec, not pattern contents.
			stack = append(stack, walkFrame{depth: frame.depth + 1, expr: &e.Args[0]})

		case rsyntax.OpStar, rsyntax.OpPlus, rsyntax.OpQuestion, rsyntax.OpNonGreedy:
			stack = append(stack, walkFrame{depth: frame.depth + 1, expr: &e.Args[0]})

		default:
			// Literals, classes, assertions, flag-only groups.
		}
	}

	return groups
}

// maxGroupDepth returns the largest Depth among the given groups, or 0 when
// there are none.
func maxGroupDepth(groups []CaptureGroup) int {
	max := 0
	for _, g := range groups {
		if g.Depth > max {
			max = g.Depth
		}
	}
	return max
}
