// Package ansi renders revis decorations as ANSI-styled terminal strings.
// It is a thin consumer of the core's mapping tables: format runs become
// lipgloss-styled segments, and the group/match tables become a textual
// connector listing in place of the drawn curves of a graphical front-end.
package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"revis"
)

// Render turns a decoration into a single ANSI string. Runs tile the text,
// so the segments concatenate back to the original text.
func Render(d revis.Decoration) string {
	var b strings.Builder
	for _, run := range d.Runs {
		b.WriteString(styleFor(run.Format).Render(d.Text[run.Span.Start:run.Span.End]))
	}
	return b.String()
}

func styleFor(f revis.TextFormat) lipgloss.Style {
	style := lipgloss.NewStyle()
	if f.Foreground != revis.Transparent {
		style = style.Foreground(f.Foreground)
	}
	if f.Background != revis.Transparent {
		style = style.Background(f.Background)
	}
	return style
}

// Connectors lists, one line per group occurrence, which glyph range of the
// pattern produced which glyph range of the input. Each line is tinted with
// the group's color, mirroring the colored curves of the original UI.
func Connectors(b *revis.Bundle) string {
	if b.Err != nil {
		return ""
	}

	groups := b.Regex.Groups
	colors := b.Regex.GroupColors
	if len(groups) == 0 {
		return ""
	}

	var out strings.Builder
	for m, entry := range b.Input.Matches {
		for g, occurrence := range entry {
			if occurrence == nil {
				continue
			}
			line := fmt.Sprintf("match %d: group %d glyphs [%d,%d) ← pattern glyphs [%d,%d)",
				m+1, g+1,
				occurrence.Start, occurrence.End,
				groups[g].Glyphs.Start, groups[g].Glyphs.End)
			out.WriteString(lipgloss.NewStyle().Foreground(colors[g+1]).Render(line))
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// RenderBundle renders the whole bundle: decorated pattern, decorated
// input, the connector listing, and the replacement output. In an error
// state only the error decoration and message are shown.
func RenderBundle(b *revis.Bundle) string {
	var out strings.Builder

	out.WriteString("pattern: ")
	out.WriteString(Render(b.Regex.Decoration))
	out.WriteByte('\n')

	if b.Err != nil {
		out.WriteString(lipgloss.NewStyle().Foreground(revis.FgError).Render(b.Err.Error()))
		out.WriteByte('\n')
		return out.String()
	}

	out.WriteString("input:\n")
	out.WriteString(Render(b.Input.Decoration))
	out.WriteByte('\n')

	if c := Connectors(b); c != "" {
		out.WriteString(c)
	}

	out.WriteString("result: ")
	out.WriteString(b.ReplaceOutput)
	out.WriteByte('\n')
	return out.String()
}
