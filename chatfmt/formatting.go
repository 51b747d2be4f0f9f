package chatfmt

import (
	"fmt"
	"strings"
)

// Prefix is the escape marker that starts every formatting token.
const Prefix = '§'

// PrefixString is Prefix as a string.
const PrefixString = "§"

// Formatting is one of the reserved single-character formatting codes.
type Formatting uint8

const (
	Black Formatting = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Obfuscated
	Bold
	Strikethrough
	Underline
	Italic
	Reset
)

type formattingInfo struct {
	code byte
	name string
	rgb  int32 // -1 for non-colours
}

var formattings = [...]formattingInfo{
	Black:         {'0', "black", 0x000000},
	DarkBlue:      {'1', "dark_blue", 0x0000AA},
	DarkGreen:     {'2', "dark_green", 0x00AA00},
	DarkAqua:      {'3', "dark_aqua", 0x00AAAA},
	DarkRed:       {'4', "dark_red", 0xAA0000},
	DarkPurple:    {'5', "dark_purple", 0xAA00AA},
	Gold:          {'6', "gold", 0xFFAA00},
	Gray:          {'7', "gray", 0xAAAAAA},
	DarkGray:      {'8', "dark_gray", 0x555555},
	Blue:          {'9', "blue", 0x5555FF},
	Green:         {'a', "green", 0x55FF55},
	Aqua:          {'b', "aqua", 0x55FFFF},
	Red:           {'c', "red", 0xFF5555},
	LightPurple:   {'d', "light_purple", 0xFF55FF},
	Yellow:        {'e', "yellow", 0xFFFF55},
	White:         {'f', "white", 0xFFFFFF},
	Obfuscated:    {'k', "obfuscated", -1},
	Bold:          {'l', "bold", -1},
	Strikethrough: {'m', "strikethrough", -1},
	Underline:     {'n', "underline", -1},
	Italic:        {'o', "italic", -1},
	Reset:         {'r', "reset", -1},
}

// Lookup tables, built once at init. The palette is closed, so nothing
// is ever added to them afterwards.
var (
	byCode    [128]Formatting
	hasCode   [128]bool
	byName    = make(map[string]Formatting, len(formattings))
	paletteBy = make(map[uint32]Formatting, 16)
)

func init() {
	for i, info := range formattings {
		f := Formatting(i)
		byCode[info.code] = f
		hasCode[info.code] = true
		byName[info.name] = f
		if info.rgb >= 0 {
			paletteBy[uint32(info.rgb)] = f
		}
	}
}

// Values returns every formatting code in declaration order.
func Values() []Formatting {
	out := make([]Formatting, len(formattings))
	for i := range formattings {
		out[i] = Formatting(i)
	}
	return out
}

// Code returns the code character, e.g. 'c' for Red.
func (f Formatting) Code() byte {
	if !f.valid() {
		return '?'
	}
	return formattings[f].code
}

// Name returns the lower snake case name, e.g. "dark_red".
func (f Formatting) Name() string {
	if !f.valid() {
		return fmt.Sprintf("formatting(%d)", uint8(f))
	}
	return formattings[f].name
}

// IsColor reports whether f is one of the sixteen palette colours.
func (f Formatting) IsColor() bool {
	return f.valid() && formattings[f].rgb >= 0
}

// IsToggle reports whether f is one of the five formatting toggles (k-o).
func (f Formatting) IsToggle() bool {
	return f >= Obfuscated && f <= Italic
}

// Color returns the palette colour for f, or None when f is not a colour.
func (f Formatting) Color() Color {
	if !f.IsColor() {
		return None
	}
	return RGB(int(formattings[f].rgb))
}

// String returns the full token, escape marker included.
func (f Formatting) String() string {
	return PrefixString + string(f.Code())
}

func (f Formatting) valid() bool {
	return int(f) < len(formattings)
}

// ByCode returns the formatting for a code character. Upper-case letters are
// accepted as aliases.
func ByCode(c rune) (Formatting, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 0 || c >= 128 || !hasCode[c] {
		return 0, false
	}
	return byCode[c], true
}

// ByName returns the formatting for a name such as "gold" or "DARK_RED".
func ByName(name string) (Formatting, bool) {
	f, ok := byName[strings.ToLower(name)]
	return f, ok
}
