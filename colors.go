package revis

import (
	"github.com/charmbracelet/lipgloss"
)

// The foreground highlight colors, and the matching dimmed backgrounds used
// to tint capture groups. Two background variants exist; both are exported
// so front-ends can pick either.
const (
	FgBlue   = lipgloss.Color("#179FFF")
	FgYellow = lipgloss.Color("#FFD700")
	FgPink   = lipgloss.Color("#DA70D6")

	BgBlue   = lipgloss.Color("#264D6D")
	BgYellow = lipgloss.Color("#6C5E20")
	BgPink   = lipgloss.Color("#613F61")

	BgBlueAlt   = lipgloss.Color("#137ABF")
	BgYellowAlt = lipgloss.Color("#BF9C00")
	BgPinkAlt   = lipgloss.Color("#995097")

	FgError = lipgloss.Color("#FF0000")
	BgError = lipgloss.Color("#68292F")

	FgWhite = lipgloss.Color("#FFFFFF")

	// Transparent is the sentinel color stored at index 0 of a group color
	// table and used as the background of unhighlighted runs.
	Transparent = lipgloss.Color("")
)

// Palette is an ordered cycle of group highlight colors.
type Palette []lipgloss.Color

var (
	ForegroundColors    = Palette{FgBlue, FgYellow, FgPink}
	BackgroundColors    = Palette{BgBlue, BgYellow, BgPink}
	AltBackgroundColors = Palette{BgBlueAlt, BgYellowAlt, BgPinkAlt}
)

// assignColors picks a background color for each of n capture groups from
// palette. The returned slice has n+1 entries; index 0 is the Transparent
// sentinel and index i holds the color of group i.
//
// If previous colors are given (index 0 sentinel included), a group index
// that existed before keeps its old color, so incremental edits do not
// reshuffle the highlighting. Freshly assigned colors cycle through the
// palette, stepping past a color that would repeat the immediately
// preceding group's.
func assignColors(n int, palette Palette, previous []lipgloss.Color) []lipgloss.Color {
	if len(palette) == 0 {
		panic("revis: empty palette")
	}

	colors := make([]lipgloss.Color, n+1)
	colors[0] = Transparent
	for i := 1; i <= n; i++ {
		if i < len(previous) && previous[i] != Transparent {
			colors[i] = previous[i]
			continue
		}
		c := palette[(i-1)%len(palette)]
		if c == colors[i-1] && len(palette) > 1 {
			c = palette[i%len(palette)]
		}
		colors[i] = c
	}
	return colors
}
