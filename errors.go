package revis

import "fmt"

// ErrorKind distinguishes the two stages at which a pattern can be
// rejected.
type ErrorKind int

const (
	// ErrParse means the pattern is syntactically invalid.
	ErrParse ErrorKind = iota
	// ErrCompile means the pattern parsed but was rejected by the matcher.
	ErrCompile
)

func (k ErrorKind) String() string {
	if k == ErrParse {
		return "parse"
	}
	return "compile"
}

// RegexError is the surfaced form of a pattern failure. Parse errors carry
// a primary source span and sometimes an auxiliary span pointing at a
// related position, such as the opening delimiter of an unbalanced pair.
// Compile errors carry no span.
type RegexError struct {
	Kind    ErrorKind
	Message string
	Span    *Span // primary span, nil for compile errors
	Aux     *Span // auxiliary span, usually nil
	cause   error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *RegexError) Unwrap() error { return e.cause }

// auxiliarySpan locates the unmatched opening delimiter of pattern, if any.
// It is used to attach an auxiliary span to unclosed-group and
// unclosed-class parse errors. Returns nil when the pattern balances.
func auxiliarySpan(pattern string) *Span {
	var opens []int
	inClass := false
	classStart := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			if !inClass {
				inClass = true
				classStart = i
			}
		case ']':
			inClass = false
		case '(':
			if !inClass {
				opens = append(opens, i)
			}
		case ')':
			if !inClass && len(opens) > 0 {
				opens = opens[:len(opens)-1]
			}
		}
	}
	if inClass {
		return &Span{Start: classStart, End: classStart + 1}
	}
	if len(opens) > 0 {
		at := opens[len(opens)-1]
		return &Span{Start: at, End: at + 1}
	}
	return nil
}

// disjoint reports whether two spans share no bytes.
func disjoint(a, b Span) bool {
	return a.End <= b.Start || b.End <= a.Start
}
