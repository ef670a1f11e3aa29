package revis

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	rsyntax "github.com/quasilyte/regex/syntax"
)

// Pattern owns everything derived from a single pattern string: the parsed
// AST, the compiled matcher, and the capture-group descriptors found by
// walking the AST. Downstream artifacts hold indexes into the pattern, never
// references into the AST, so a Pattern can be dropped wholesale.
type Pattern struct {
	source  string
	ast     *rsyntax.Regexp
	matcher *regexp.Regexp
	groups  []CaptureGroup
}

// Compile parses pattern into an AST and, if that succeeds, compiles it
// into a matcher. An empty pattern compiles and matches the empty string at
// every position. Patterns longer than 64 KiB are rejected with a compile
// error, since the AST's source positions are 16-bit offsets.
func Compile(pattern string) (*Pattern, *RegexError) {
	if len(pattern) > math.MaxUint16 {
		return nil, &RegexError{
			Kind:    ErrCompile,
			Message: fmt.Sprintf("pattern too long: %d bytes", len(pattern)),
		}
	}

	parser := rsyntax.NewParser(&rsyntax.ParserOptions{})
	ast, err := parser.Parse(pattern)
	if err != nil {
		return nil, parseError(pattern, err)
	}

	matcher, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &RegexError{Kind: ErrCompile, Message: err.Error(), cause: err}
	}

	groups := captureGroups(ast.Expr)
	if len(groups) != matcher.NumSubexp() {
		panic(fmt.Sprintf("revis: walker found %d capture groups, matcher reports %d for %q",
			len(groups), matcher.NumSubexp(), pattern))
	}

	return &Pattern{source: pattern, ast: ast, matcher: matcher, groups: groups}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("revis: Compile(%q): %v", pattern, err))
	}
	return p
}

func parseError(pattern string, err error) *RegexError {
	re := &RegexError{Kind: ErrParse, Message: err.Error(), cause: err}

	primary := Span{Start: 0, End: len(pattern)}
	var pe rsyntax.ParseError
	if errors.As(err, &pe) {
		primary = Span{Start: int(pe.Pos.Begin), End: int(pe.Pos.End)}
		re.Message = pe.Message
	}
	re.Span = &primary

	// End-of-pattern errors come back with an empty primary span. When the
	// unmatched delimiter can be located, point the primary there instead
	// so the offending byte gets the highlight.
	if aux := auxiliarySpan(pattern); aux != nil {
		if primary.Empty() {
			re.Span = aux
		} else if disjoint(*aux, primary) {
			re.Aux = aux
		}
	}
	return re
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string { return p.source }

// NumSubexp returns the number of capturing groups in the pattern.
func (p *Pattern) NumSubexp() int { return len(p.groups) }

// SubexpNames returns the names of the capturing groups, with the first
// element reserved for the whole match as in the regexp package.
func (p *Pattern) SubexpNames() []string { return p.matcher.SubexpNames() }

// CaptureGroups returns the capture-group descriptors in capture-index
// order. The slice is shared; callers must not mutate it.
func (p *Pattern) CaptureGroups() []CaptureGroup { return p.groups }
