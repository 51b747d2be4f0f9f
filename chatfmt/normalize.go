package chatfmt

// Palette returns the palette entry whose RGB value equals c exactly.
func Palette(c Color) (Formatting, bool) {
	if !c.set {
		return 0, false
	}
	f, ok := paletteBy[c.rgb]
	return f, ok
}

// Code returns the token that selects colour c: the palette token when c
// matches an entry exactly, otherwise the raw hex token §#rrggbb. None has
// no token and returns "".
func Code(c Color) string {
	if !c.set {
		return ""
	}
	if f, ok := Palette(c); ok {
		return f.String()
	}
	return PrefixString + c.Hex()
}
