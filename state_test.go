package revis

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func inputs(pattern, text, template string) Inputs {
	return Inputs{Pattern: pattern, Text: text, Template: template, FontID: "mono"}
}

func TestRecompute(t *testing.T) {
	b := Recompute(inputs(`a(b)c`, "abcabc", "$1"), nil)
	require.Nil(t, b.Err)
	require.NotNil(t, b.Pattern)
	requireTiles(t, b.Regex.Decoration)
	requireTiles(t, b.Input.Decoration)
	require.Equal(t, "bb", b.ReplaceOutput)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlue}, b.GroupColors())
}

func TestRecomputeEmptyPattern(t *testing.T) {
	b := Recompute(inputs(``, "hello", "X"), nil)
	require.Nil(t, b.Err)

	// Empty decorations, an undecorated input, no matches, and the text
	// passed through the replacement untouched.
	require.Equal(t, RegexDecoration{}, b.Regex)
	require.Len(t, b.Input.Runs, 1)
	require.Empty(t, b.Input.Matches)
	require.Equal(t, "hello", b.ReplaceOutput)
}

func TestRecomputeErrorState(t *testing.T) {
	good := Recompute(inputs(`a`, "banana", "X"), nil)
	require.Equal(t, "bXnXnX", good.ReplaceOutput)

	bad := Recompute(inputs(`[`, "banana", "X"), good)
	require.NotNil(t, bad.Err)
	require.Equal(t, ErrParse, bad.Err.Kind)
	require.Nil(t, bad.Pattern)
	requireTiles(t, bad.Regex.Decoration)
	require.Empty(t, bad.Regex.Groups)
	require.Nil(t, bad.GroupColors())

	// The input stays readable and the previous replacement output is
	// retained while the user types.
	require.Len(t, bad.Input.Runs, 1)
	require.Empty(t, bad.Input.Matches)
	require.Equal(t, "bXnXnX", bad.ReplaceOutput)
}

func TestRecomputeErrorStateWithoutPrevious(t *testing.T) {
	b := Recompute(inputs(`[`, "abc", "X"), nil)
	require.NotNil(t, b.Err)
	require.Equal(t, "", b.ReplaceOutput)
}

func TestRecomputeIdempotent(t *testing.T) {
	in := inputs(`(\d+)-(\d+)`, "12-34 xx 5-6", "$2-$1")
	first := Recompute(in, nil)
	second := Recompute(first.Inputs, first)

	require.Equal(t, first.Regex, second.Regex)
	require.Equal(t, first.Input, second.Input)
	require.Equal(t, first.ReplaceOutput, second.ReplaceOutput)
}

func TestRecomputeColorStability(t *testing.T) {
	first := Recompute(inputs(`(a)(b)`, "ab", "$0"), nil)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlue, BgYellow}, first.GroupColors())

	// Appending a group keeps the existing assignments.
	grown := Recompute(inputs(`(a)(b)(c)`, "abc", "$0"), first)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlue, BgYellow, BgPink}, grown.GroupColors())

	// Dropping a group keeps the survivors' colors.
	shrunk := Recompute(inputs(`(a)`, "ab", "$0"), grown)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlue}, shrunk.GroupColors())
}

func TestRecomputeCarryOverSkippedAfterError(t *testing.T) {
	good := Recompute(inputs(`(a)`, "a", "$0"), nil)
	bad := Recompute(inputs(`[`, "a", "$0"), good)
	recovered := Recompute(inputs(`(a)`, "a", "$0"), bad)
	require.Nil(t, recovered.Err)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlue}, recovered.GroupColors())
}

func TestRecomputeCustomPalette(t *testing.T) {
	in := inputs(`(a)`, "a", "$0")
	in.Palette = AltBackgroundColors
	b := Recompute(in, nil)
	require.Equal(t, []lipgloss.Color{Transparent, BgBlueAlt}, b.GroupColors())
}

func TestDefaultTemplateIsWholeMatch(t *testing.T) {
	b := Recompute(inputs(`a(b)c`, "abcabc", DefaultTemplate), nil)
	require.Equal(t, "abcabc", b.ReplaceOutput)
}
