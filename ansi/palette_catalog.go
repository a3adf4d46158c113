package ansi

import (
	"sort"
	"strings"
)

// PaletteDefault mirrors the classic look: plain 16-colour level tags, a
// muted grey gutter and a grey banner with near-black text.
var PaletteDefault = Palette{
	Red:    Red,
	Yellow: Yellow,
	Cyan:   Cyan,
	Green:  Green,
	White:  White,
	Bold:   Bold,
	Gutter: FG(160, 160, 160),
	Banner: BG(160, 160, 160) + FG(20, 20, 20),
}

// PaletteBright uses the high-intensity colour range for level tags.
var PaletteBright = Palette{
	Red:    BrightRed,
	Yellow: BrightYellow,
	Cyan:   BrightCyan,
	Green:  BrightGreen,
	White:  BrightWhite,
	Bold:   Bold,
	Gutter: FG(200, 200, 200),
	Banner: BG(220, 220, 220) + FG(10, 10, 10),
}

// PaletteMuted keeps the tree quiet so the messages stand out.
var PaletteMuted = Palette{
	Red:    FG(205, 92, 92),
	Yellow: FG(218, 185, 107),
	Cyan:   FG(112, 173, 190),
	Green:  FG(128, 170, 120),
	White:  FG(190, 190, 190),
	Bold:   Bold,
	Gutter: Faint,
	Banner: BG(70, 70, 70) + FG(210, 210, 210),
}

// PaletteMono only uses bold and reverse video, for terminals without colour
// support that still understand SGR attributes.
var PaletteMono = Palette{
	Red:    Bold,
	Yellow: Bold,
	Cyan:   Bold,
	Green:  Bold,
	White:  Bold,
	Bold:   Bold,
	Gutter: Faint,
	Banner: Reverse,
}

// PaletteSolarizedDark follows the solarized accent colours.
var PaletteSolarizedDark = Palette{
	Red:    FG(220, 50, 47),
	Yellow: FG(181, 137, 0),
	Cyan:   FG(42, 161, 152),
	Green:  FG(133, 153, 0),
	White:  FG(147, 161, 161),
	Bold:   Bold,
	Gutter: FG(88, 110, 117),
	Banner: BG(7, 54, 66) + FG(238, 232, 213),
}

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"bright":         &PaletteBright,
	"muted":          &PaletteMuted,
	"mono":           &PaletteMono,
	"solarized-dark": &PaletteSolarizedDark,
}

var paletteAliases = map[string]string{
	"classic":       "default",
	"monochrome":    "mono",
	"solarized":     "solarized-dark",
	"solarizeddark": "solarized-dark",
	"vivid":         "bright",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown names
// resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	palette, _ := LookupPalette(name)
	return palette
}

// LookupPalette is PaletteByName that also reports whether name was known.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault, false
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette, true
	}
	return &PaletteDefault, false
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
