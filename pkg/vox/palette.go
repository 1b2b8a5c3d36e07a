package vox

// GrayPalette returns 256 opaque gray levels, entry i being {i, i, i, 255}.
func GrayPalette() []Color {
	p := make([]Color, PaletteSize)
	for i := range p {
		v := uint8(i)
		p[i] = Color{R: v, G: v, B: v, A: 255}
	}
	return p
}

// Palette presets addressable by name from scene files.
var presets = map[string]func() []Color{
	"gray": GrayPalette,
}

// Preset returns a copy of the named palette.
func Preset(name string) ([]Color, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}
