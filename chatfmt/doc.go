// Package chatfmt describes the legacy section-sign chat formatting convention.
//
// Every formatting token starts with the escape marker § followed by a single
// code character:
//
//	0-9 a-f   one of the sixteen named palette colours
//	k         obfuscated
//	l         bold
//	m         strikethrough
//	n         underline
//	o         italic
//	r         reset
//
// Colours outside the palette are written as a raw hex token, §#rrggbb.
//
// # Colours
//
// A Color is either None (inherit/absent) or a 24-bit RGB value. Palette
// colours are not a separate type: they are ordinary RGB values that happen to
// match one of the sixteen entries, and the match is only looked up when a
// colour is turned into a token (see Code).
package chatfmt
