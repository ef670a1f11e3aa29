package revis

import (
	"github.com/charmbracelet/lipgloss"
)

// TextFormat is the style applied to one format run. FontID comes from the
// style provider and is opaque to this package.
type TextFormat struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	FontID     string
}

// simpleFormat colors the text itself and leaves the background untouched.
func simpleFormat(fontID string, fg lipgloss.Color) TextFormat {
	return TextFormat{Foreground: fg, Background: Transparent, FontID: fontID}
}

// backgroundFormat tints the background and forces a white foreground so
// the text stays readable on the dimmed palette colors.
func backgroundFormat(fontID string, bg lipgloss.Color) TextFormat {
	return TextFormat{Foreground: FgWhite, Background: bg, FontID: fontID}
}

// plainFormat renders text with default colors.
func plainFormat(fontID string) TextFormat {
	return TextFormat{Foreground: Transparent, Background: Transparent, FontID: fontID}
}

// FormatRun styles a contiguous byte range of a decoration's text. Runs are
// maximal: adjacent runs always differ in style source.
type FormatRun struct {
	Span   Span
	Format TextFormat
}

// Decoration is a piece of text plus an ordered list of format runs that
// tile it completely, with no gaps and no overlaps.
type Decoration struct {
	Text string
	Runs []FormatRun
}

// plainDecoration covers the whole text with a single unstyled run.
func plainDecoration(text string, fontID string) Decoration {
	return Decoration{
		Text: text,
		Runs: []FormatRun{{Span: Span{Start: 0, End: len(text)}, Format: plainFormat(fontID)}},
	}
}

// runsFromMarker run-length encodes a marker array into format runs.
// marker[i] holds the 1-based index of the capture group that should color
// byte i, or 0 for plain text. colors is indexed by marker value, with the
// Transparent sentinel at index 0.
//
// Walks adjacent pairs and breaks on inequality; the trailing run is
// emitted after the loop.
func runsFromMarker(marker []int, colors []lipgloss.Color, fontID string) []FormatRun {
	if len(marker) == 0 {
		return nil
	}

	format := func(v int) TextFormat {
		if v == 0 {
			return plainFormat(fontID)
		}
		return backgroundFormat(fontID, colors[v])
	}

	var runs []FormatRun
	head := 0
	for i := 1; i < len(marker); i++ {
		if marker[i] != marker[i-1] {
			runs = append(runs, FormatRun{
				Span:   Span{Start: head, End: i},
				Format: format(marker[head]),
			})
			head = i
		}
	}
	runs = append(runs, FormatRun{
		Span:   Span{Start: head, End: len(marker)},
		Format: format(marker[head]),
	})
	return runs
}
