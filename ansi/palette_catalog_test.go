package ansi

import "testing"

func TestPaletteByNameCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "default", want: PaletteDefault},
		{name: "bright", want: PaletteBright},
		{name: "muted", want: PaletteMuted},
		{name: "mono", want: PaletteMono},
		{name: "solarized-dark", want: PaletteSolarizedDark},
	}

	for _, tc := range cases {
		got := PaletteByName(tc.name)
		if got == nil {
			t.Fatalf("expected palette %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("palette %q mismatch", tc.name)
		}
	}
}

func TestPaletteByNameAliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "classic", want: PaletteDefault},
		{name: "Monochrome", want: PaletteMono},
		{name: "solarized_dark", want: PaletteSolarizedDark},
		{name: "SolarizedDark", want: PaletteSolarizedDark},
		{name: "PaletteMuted", want: PaletteMuted},
		{name: "  palette-bright ", want: PaletteBright},
	}

	for _, tc := range cases {
		got := PaletteByName(tc.name)
		if got == nil {
			t.Fatalf("expected alias %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("alias %q mismatch", tc.name)
		}
	}
}

func TestPaletteByNameInvalid(t *testing.T) {
	t.Parallel()

	got := PaletteByName("does-not-exist")
	if got == nil {
		t.Fatalf("expected unknown palette lookup to return default")
	}
	if *got != PaletteDefault {
		t.Fatalf("expected unknown palette lookup to return default palette")
	}
	if _, ok := LookupPalette("does-not-exist"); ok {
		t.Fatalf("expected LookupPalette to report unknown name")
	}
	if _, ok := LookupPalette(""); ok {
		t.Fatalf("expected LookupPalette to report empty name as unknown")
	}
}

func TestAvailablePaletteNames(t *testing.T) {
	t.Parallel()

	names := AvailablePaletteNames()
	want := []string{"bright", "default", "mono", "muted", "solarized-dark"}
	if len(names) != len(want) {
		t.Fatalf("palette names mismatch: got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("palette names mismatch: got %v want %v", names, want)
		}
	}
}
