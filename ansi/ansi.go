// Package ansi provides the ANSI escape sequences and palette helpers used by
// pstree's colored renderer. The exported strings can be overridden or swapped
// via SetPalette so callers can restyle the level tags, the branch gutter and
// the branch banners without touching pstree internals.
package ansi

import (
	"strconv"
	"sync"
)

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences used by pstree.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Black         = "\x1b[30m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	White         = "\x1b[37m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"
	Reverse       = "\x1b[7m"
)

// FG returns the 24-bit foreground escape for r, g, b.
func FG(r, g, b uint8) string {
	return rgb("38", r, g, b)
}

// BG returns the 24-bit background escape for r, g, b.
func BG(r, g, b uint8) string {
	return rgb("48", r, g, b)
}

func rgb(kind string, r, g, b uint8) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, "\x1b["...)
	buf = append(buf, kind...)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// Semantic values that pstree reads when it renders. ColorRed through
// ColorWhite back the level tags, LevelBold is prefixed to every tag, Gutter
// styles the vertical branch bars and Banner styles the branch name banners.
var (
	ColorRed    = Red
	ColorYellow = Yellow
	ColorCyan   = Cyan
	ColorGreen  = Green
	ColorWhite  = White
	LevelBold   = Bold
	Gutter      = FG(160, 160, 160)
	Banner      = BG(160, 160, 160) + FG(20, 20, 20)
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, see the Palette* variables for
// examples. Empty fields keep the current value.
type Palette struct {
	Red    string
	Yellow string
	Cyan   string
	Green  string
	White  string
	Bold   string
	Gutter string
	Banner string
}

// SetPalette sets the package-level ANSI variables exposed by this package.
// Loggers can also use explicit palette selection through
// pstree.Options.Palette.
//
//	ansi.SetPalette(ansi.PaletteMuted)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	next := palette.Fill(snapshotLocked())
	ColorRed = next.Red
	ColorYellow = next.Yellow
	ColorCyan = next.Cyan
	ColorGreen = next.Green
	ColorWhite = next.White
	LevelBold = next.Bold
	Gutter = next.Gutter
	Banner = next.Banner
}

// Fill returns p with every empty field taken from base.
func (p Palette) Fill(base Palette) Palette {
	return Palette{
		Red:    f(p.Red, base.Red),
		Yellow: f(p.Yellow, base.Yellow),
		Cyan:   f(p.Cyan, base.Cyan),
		Green:  f(p.Green, base.Green),
		White:  f(p.White, base.White),
		Bold:   f(p.Bold, base.Bold),
		Gutter: f(p.Gutter, base.Gutter),
		Banner: f(p.Banner, base.Banner),
	}
}

// Snapshot returns the current ANSI palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteMono)
//	// run assertions...
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Red:    ColorRed,
		Yellow: ColorYellow,
		Cyan:   ColorCyan,
		Green:  ColorGreen,
		White:  ColorWhite,
		Bold:   LevelBold,
		Gutter: Gutter,
		Banner: Banner,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
