package revis

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultTemplate is the replacement template used when the user has not
// supplied one.
const DefaultTemplate = "$0"

// Inputs is everything a recomputation depends on. Palette may be nil, in
// which case BackgroundColors is used. FontID comes from the style
// provider and is carried into every format run unchanged.
type Inputs struct {
	Pattern  string
	Text     string
	Template string
	FontID   string
	Palette  Palette
}

// Bundle is the full derived state for one set of inputs. When Err is
// non-nil the bundle is an error state: Regex holds the error decoration,
// Input holds an undecorated rendering of the text, and ReplaceOutput keeps
// its previous value so the user sees a stable result while typing.
type Bundle struct {
	Inputs        Inputs
	Pattern       *Pattern
	Regex         RegexDecoration
	Input         InputDecoration
	ReplaceOutput string
	Err           *RegexError
}

// GroupColors returns the per-group color table of the current pattern
// decoration (Transparent sentinel at index 0), or nil in an error state.
func (b *Bundle) GroupColors() []lipgloss.Color {
	if b.Err != nil {
		return nil
	}
	return b.Regex.GroupColors
}

// Recompute builds a fresh bundle from inputs. previous is optional; when
// given, its pattern decoration seeds color carry-over and its replacement
// output is retained across error states. Recomputing with identical
// inputs and the same previous bundle yields identical decorations.
func Recompute(in Inputs, previous *Bundle) *Bundle {
	palette := in.Palette
	if len(palette) == 0 {
		palette = BackgroundColors
	}

	p, rerr := Compile(in.Pattern)
	if rerr != nil {
		b := &Bundle{
			Inputs: in,
			Regex:  BuildErrorDecoration(in.Pattern, rerr, in.FontID),
			Input: InputDecoration{
				Decoration: plainDecoration(in.Text, in.FontID),
			},
			Err: rerr,
		}
		if previous != nil {
			b.ReplaceOutput = previous.ReplaceOutput
		}
		return b
	}

	var prevRegex *RegexDecoration
	if previous != nil && previous.Err == nil {
		prevRegex = &previous.Regex
	}

	regex := BuildRegexDecoration(p, in.FontID, palette, prevRegex)
	input := BuildInputDecoration(in.Text, p, regex.GroupColors, in.FontID)

	return &Bundle{
		Inputs:        in,
		Pattern:       p,
		Regex:         regex,
		Input:         input,
		ReplaceOutput: p.ReplaceAll(in.Text, in.Template),
	}
}
