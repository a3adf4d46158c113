package pstree

import "pkt.systems/pstree/ansi"

// Color is the display colour of a level tag.
type Color uint8

const (
	Red Color = iota
	Yellow
	Cyan
	Green
	White
)

// String returns the lowercase colour name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Cyan:
		return "cyan"
	case Green:
		return "green"
	default:
		return "white"
	}
}

// ColorFor maps a level to the colour of its tag.
func ColorFor(level Level) Color {
	switch level {
	case ErrorLevel:
		return Red
	case WarnLevel:
		return Yellow
	case InfoLevel:
		return Cyan
	case DebugLevel:
		return Green
	default:
		return White
	}
}

func paletteColor(p *ansi.Palette, c Color) string {
	switch c {
	case Red:
		return p.Red
	case Yellow:
		return p.Yellow
	case Cyan:
		return p.Cyan
	case Green:
		return p.Green
	default:
		return p.White
	}
}

// resolvePaletteOption copies palette, filling empty fields from the current
// package-level values, so later edits by the caller do not reach the logger.
func resolvePaletteOption(palette *ansi.Palette) *ansi.Palette {
	snap := ansi.Snapshot()
	if palette != nil {
		snap = palette.Fill(snap)
	}
	return &snap
}
