package chatfmt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned when a colour string is neither a hex code nor
// a palette name.
var ErrUnknownColor = errors.New("unknown color")

// Color is either None or a 24-bit RGB value. The zero value is None.
// Colours compare with == by effective RGB value.
type Color struct {
	rgb uint32
	set bool
}

// None is the absent colour: the run inherits whatever colour is in effect.
var None = Color{}

// RGB returns a colour for the low 24 bits of v.
func RGB(v int) Color {
	return Color{rgb: uint32(v) & 0xFFFFFF, set: true}
}

// IsNone reports whether c is the absent colour.
func (c Color) IsNone() bool {
	return !c.set
}

// Int returns the 24-bit RGB value, or -1 for None.
func (c Color) Int() int {
	if !c.set {
		return -1
	}
	return int(c.rgb)
}

// Hex returns "#rrggbb", or "" for None.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.Colorful().Hex()
}

// Colorful converts c for use with colour maths and terminal rendering.
// None converts to black.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64((c.rgb>>16)&0xff) / 255.0,
		G: float64((c.rgb>>8)&0xff) / 255.0,
		B: float64(c.rgb&0xff) / 255.0,
	}
}

// String returns the palette name when c matches a palette entry, otherwise
// the hex form. None prints as "none".
func (c Color) String() string {
	if !c.set {
		return "none"
	}
	if f, ok := Palette(c); ok {
		return f.Name()
	}
	return c.Hex()
}

// FromColorful converts a colorful.Color, clamping out-of-gamut values.
func FromColorful(col colorful.Color) Color {
	r, g, b := col.Clamped().RGB255()
	return RGB(int(r)<<16 | int(g)<<8 | int(b))
}

// ParseColor parses "#rrggbb", "#rgb" or a palette name. The empty string
// and "none" parse as None.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "", strings.EqualFold(s, "none"):
		return None, nil
	case strings.HasPrefix(s, "#"):
		col, err := colorful.Hex(s)
		if err != nil {
			return None, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		return FromColorful(col), nil
	}
	if f, ok := ByName(s); ok && f.IsColor() {
		return f.Color(), nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// HexDigits parses the six digits that follow "#" in a §#rrggbb token.
func HexDigits(digits string) (Color, error) {
	var b [3]byte
	if len(digits) != 2*len(b) {
		return None, fmt.Errorf("%w: %q", ErrUnknownColor, digits)
	}
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return None, fmt.Errorf("%w: %q", ErrUnknownColor, digits)
	}
	return RGB(int(b[0])<<16 | int(b[1])<<8 | int(b[2])), nil
}
