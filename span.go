package revis

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into a string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

// GlyphRange is a half-open range [Start, End) measured in laid-out glyphs.
// Newlines produce no glyph, so glyph indexes differ from rune indexes in
// multi-line text.
type GlyphRange struct {
	Start int
	End   int
}

// Len returns the number of glyphs covered by the range.
func (g GlyphRange) Len() int { return g.End - g.Start }

// GlyphCount returns the number of glyphs the text renderer produces for s:
// the rune count minus the newline count.
func GlyphCount(s string) int {
	return utf8.RuneCountInString(s) - strings.Count(s, "\n")
}

// glyphRange converts a byte span into a glyph range by splitting text at
// the span endpoints and counting glyphs in the prefix and in the span
// itself. The endpoints must lie on UTF-8 rune boundaries; anything else is
// a bug in the caller.
func glyphRange(span Span, text string) GlyphRange {
	if span.Start < 0 || span.End < span.Start || span.End > len(text) {
		panic(fmt.Sprintf("revis: byte span [%d,%d) out of bounds for text of %d bytes", span.Start, span.End, len(text)))
	}
	if !boundary(text, span.Start) || !boundary(text, span.End) {
		panic(fmt.Sprintf("revis: byte span [%d,%d) does not align on rune boundaries", span.Start, span.End))
	}
	start := GlyphCount(text[:span.Start])
	length := GlyphCount(text[span.Start:span.End])
	return GlyphRange{Start: start, End: start + length}
}

func boundary(s string, i int) bool {
	return i == 0 || i == len(s) || utf8.RuneStart(s[i])
}
