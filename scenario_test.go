package revis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// End-to-end checks of the full recompute pipeline on small, concrete
// inputs, asserting the observable state a front-end consumes.

func TestScenarioSingleGroup(t *testing.T) {
	b := Recompute(inputs(`a(b)c`, "abcabc", "$0"), nil)
	require.Nil(t, b.Err)

	require.Equal(t, [][]*GlyphRange{
		{gr(1, 2)},
		{gr(4, 5)},
	}, b.Input.Matches)

	require.Equal(t, []GroupSpan{{Prominence: 0, Glyphs: GlyphRange{1, 4}}}, b.Regex.Groups)
	require.Equal(t, "abcabc", b.ReplaceOutput)
}

func TestScenarioTwoGroupsWithReplacement(t *testing.T) {
	b := Recompute(inputs(`(\d+)-(\d+)`, "12-34 xx 5-6", "$2-$1"), nil)
	require.Nil(t, b.Err)

	require.Len(t, b.Input.Matches, 2)
	for _, entry := range b.Input.Matches {
		require.Len(t, entry, 2)
		require.NotNil(t, entry[0])
		require.NotNil(t, entry[1])
	}
	require.Equal(t, "34-12 xx 6-5", b.ReplaceOutput)
}

func TestScenarioNestedGroups(t *testing.T) {
	b := Recompute(inputs(`((a)b)`, "ab", "$0"), nil)
	require.Nil(t, b.Err)

	require.Equal(t, [][]*GlyphRange{
		{gr(0, 2), gr(0, 1)},
	}, b.Input.Matches)

	// Byte 0 of the input is colored by the inner group.
	require.Equal(t, Span{0, 1}, b.Input.Runs[0].Span)
	require.Equal(t, b.Regex.GroupColors[2], b.Input.Runs[0].Format.Background)
}

func TestScenarioMalformedPattern(t *testing.T) {
	previous := Recompute(inputs(`a`, "abc", "X"), nil)
	b := Recompute(inputs(`[`, "abc", "X"), previous)

	require.NotNil(t, b.Err)
	require.Equal(t, ErrParse, b.Err.Kind)
	requireTiles(t, b.Regex.Decoration)

	// Exactly three runs: empty red prefix, the highlighted `[`, empty red
	// suffix.
	require.Len(t, b.Regex.Runs, 3)
	require.Equal(t, Span{0, 0}, b.Regex.Runs[0].Span)
	require.Equal(t, simpleFormat("mono", FgError), b.Regex.Runs[0].Format)
	require.Equal(t, Span{0, 1}, b.Regex.Runs[1].Span)
	require.Equal(t, BgError, b.Regex.Runs[1].Format.Background)
	require.Equal(t, FgWhite, b.Regex.Runs[1].Format.Foreground)
	require.Equal(t, Span{1, 1}, b.Regex.Runs[2].Span)
	require.Equal(t, simpleFormat("mono", FgError), b.Regex.Runs[2].Format)

	require.Equal(t, previous.ReplaceOutput, b.ReplaceOutput)
}

func TestScenarioEmptyPattern(t *testing.T) {
	b := Recompute(inputs(``, "hello", "X"), nil)
	require.Nil(t, b.Err)
	require.Empty(t, b.Input.Matches)
	require.Len(t, b.Input.Runs, 1)
	require.Equal(t, plainFormat("mono"), b.Input.Runs[0].Format)
	require.Equal(t, "hello", b.ReplaceOutput)
}

func TestScenarioNewlineGlyphs(t *testing.T) {
	b := Recompute(inputs("(a\\nb)", "a\nb", "$0"), nil)
	require.Nil(t, b.Err)

	// Three matched bytes, two glyphs: the newline is not laid out.
	require.Equal(t, [][]*GlyphRange{{gr(0, 2)}}, b.Input.Matches)
	require.Equal(t, "a\nb", b.ReplaceOutput)
}

// Decorations tile for arbitrary pattern/text pairs, including the
// degenerate ones.
func TestScenarioTileCompleteness(t *testing.T) {
	cases := []struct{ pattern, text string }{
		{``, ``},
		{``, "text"},
		{`(a)`, ``},
		{`a(b)c`, "abcabc"},
		{`((a)b)`, "abab"},
		{`(a)|(b)`, "ab ba"},
		{`(日)本`, "日本語日本"},
		{`(a\n)`, "a\na\n"},
		{`x`, "no match here... well, one"},
	}
	for _, tc := range cases {
		b := Recompute(inputs(tc.pattern, tc.text, "$0"), nil)
		require.Nil(t, b.Err, "pattern %q", tc.pattern)
		requireTiles(t, b.Regex.Decoration)
		requireTiles(t, b.Input.Decoration)
	}
}
