package revis

import (
	"github.com/charmbracelet/lipgloss"
)

// InputDecoration is the decorated form of the input text: format runs
// coloring the bytes each capture group matched, plus one glyph-range table
// per whole match. Matches[m][g-1] locates group g's occurrence in match m,
// or is nil when the group did not participate.
type InputDecoration struct {
	Decoration
	Matches [][]*GlyphRange
}

// BuildInputDecoration runs the pattern's matcher over text and decorates
// every captured byte with its group's color. colors is the pattern
// decoration's group color table (Transparent sentinel at index 0). Within
// one match, groups are written in index order, so nested groups overwrite
// their enclosing group, same as in the pattern decoration.
func BuildInputDecoration(text string, p *Pattern, colors []lipgloss.Color, fontID string) InputDecoration {
	if text == "" {
		return InputDecoration{
			Decoration: plainDecoration("", fontID),
		}
	}
	if p.source == "" {
		return InputDecoration{
			Decoration: plainDecoration(text, fontID),
		}
	}

	n := p.NumSubexp()
	marker := make([]int, len(text))
	var matches [][]*GlyphRange

	for _, m := range p.matcher.FindAllStringSubmatchIndex(text, -1) {
		entry := make([]*GlyphRange, n)
		for g := 1; g <= n; g++ {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				continue
			}
			for i := start; i < end; i++ {
				marker[i] = g
			}
			r := glyphRange(Span{Start: start, End: end}, text)
			entry[g-1] = &r
		}
		matches = append(matches, entry)
	}

	return InputDecoration{
		Decoration: Decoration{
			Text: text,
			Runs: runsFromMarker(marker, colors, fontID),
		},
		Matches: matches,
	}
}
