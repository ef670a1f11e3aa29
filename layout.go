package revis

import (
	"github.com/charmbracelet/lipgloss"
)

// GroupSpan locates one capture group inside the decorated pattern text.
type GroupSpan struct {
	// Prominence is the group's structural depth inverted (maxDepth −
	// depth), so shallower groups get larger values. Connector renderers
	// use it directly as a line weight.
	Prominence int
	// Glyphs is the group's position in the laid-out pattern, measured in
	// glyphs.
	Glyphs GlyphRange
}

// RegexDecoration is the decorated form of a pattern: the format runs that
// highlight its capture groups, the group→glyph table, and the color
// assigned to each group. GroupColors[0] is the Transparent sentinel;
// GroupColors[i] belongs to capture group i.
type RegexDecoration struct {
	Decoration
	Groups      []GroupSpan
	GroupColors []lipgloss.Color
}

// BuildRegexDecoration decorates a compiled pattern's source text. Each
// byte is marked with the index of the capture group that should color it;
// groups are written in walker order (outer first), so on overlap the
// innermost group wins. previous, when given, seeds color carry-over.
func BuildRegexDecoration(p *Pattern, fontID string, palette Palette, previous *RegexDecoration) RegexDecoration {
	if p.source == "" {
		return RegexDecoration{}
	}

	groups := p.CaptureGroups()

	var prevColors []lipgloss.Color
	if previous != nil {
		prevColors = previous.GroupColors
	}
	colors := assignColors(len(groups), palette, prevColors)

	marker := make([]int, len(p.source))
	for _, g := range groups {
		for i := g.Span.Start; i < g.Span.End; i++ {
			marker[i] = g.Index
		}
	}

	maxDepth := maxGroupDepth(groups)
	table := make([]GroupSpan, len(groups))
	for i, g := range groups {
		table[i] = GroupSpan{
			Prominence: maxDepth - g.Depth,
			Glyphs:     glyphRange(g.Span, p.source),
		}
	}

	return RegexDecoration{
		Decoration: Decoration{
			Text: p.source,
			Runs: runsFromMarker(marker, colors, fontID),
		},
		Groups:      table,
		GroupColors: colors,
	}
}

// BuildErrorDecoration decorates a malformed pattern. The text is rendered
// in red with the primary error span highlighted; when the error also
// carries an auxiliary span (the opening half of an unbalanced pair), both
// spans are highlighted. Compile errors have no span, so the whole pattern
// is highlighted. The group tables stay empty.
func BuildErrorDecoration(pattern string, rerr *RegexError, fontID string) RegexDecoration {
	plain := func(span Span) FormatRun {
		return FormatRun{Span: span, Format: simpleFormat(fontID, FgError)}
	}
	highlight := func(span Span) FormatRun {
		return FormatRun{Span: span, Format: TextFormat{
			Foreground: FgWhite,
			Background: BgError,
			FontID:     fontID,
		}}
	}

	var runs []FormatRun
	switch {
	case rerr.Span == nil:
		runs = []FormatRun{highlight(Span{Start: 0, End: len(pattern)})}

	case rerr.Aux == nil:
		p := *rerr.Span
		runs = []FormatRun{
			plain(Span{Start: 0, End: p.Start}),
			highlight(p),
			plain(Span{Start: p.End, End: len(pattern)}),
		}

	default:
		lo, hi := *rerr.Span, *rerr.Aux
		if hi.Start < lo.Start {
			lo, hi = hi, lo
		}
		runs = []FormatRun{
			plain(Span{Start: 0, End: lo.Start}),
			highlight(lo),
			plain(Span{Start: lo.End, End: hi.Start}),
			highlight(hi),
			plain(Span{Start: hi.End, End: len(pattern)}),
		}
	}

	return RegexDecoration{
		Decoration: Decoration{Text: pattern, Runs: runs},
	}
}
