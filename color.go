package canopy

// Color is one of the eight base terminal colors, or ColorNone, which
// inherits whatever color is active at the point the window is rendered.
// The zero value is ColorNone, so an unset channel always inherits.
type Color int8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Term returns the terminal color number for c, -1 for ColorNone.
func (c Color) Term() int {
	return int(c) - 1
}

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "none"
	}
}

// Style pairs a foreground and background color. Because either channel may
// be ColorNone, identical Style values can resolve differently depending on
// where in the window tree they appear.
type Style struct {
	FG Color
	BG Color
}

// Inherit resolves s against the active style: any ColorNone channel takes
// the corresponding channel from active. The result becomes the active
// style for everything rendered underneath.
func (s Style) Inherit(active Style) Style {
	if s.FG == ColorNone {
		s.FG = active.FG
	}
	if s.BG == ColorNone {
		s.BG = active.BG
	}
	return s
}

// PairIndex maps a style to its terminal color-pair index, a fixed
// bijection over the 9x9 space of terminal color numbers -1..7 per channel:
// (fg+1)*9 + (bg+1).
func (s Style) PairIndex() int {
	return (s.FG.Term()+1)*9 + (s.BG.Term() + 1)
}
