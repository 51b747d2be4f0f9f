package styledtext

import (
	"github.com/rivo/uniseg"
)

// Width returns the monospace display width of the unformatted text.
func (t *StyledText) Width() int {
	w := 0
	for _, p := range t.parts {
		w += uniseg.StringWidth(p.Text)
	}
	return w
}

// Truncate returns a copy of t cut to at most maxWidth display columns,
// splitting only between grapheme clusters. When anything is cut, tail is
// appended in the style of the last kept character, itself cut down when
// it alone is wider than maxWidth. The copy shares t's event indices.
func (t *StyledText) Truncate(maxWidth int, tail string) *StyledText {
	out := withEvents(&t.events)
	if len(t.parts) == 0 || t.Width() <= maxWidth {
		out.parts = t.Parts()
		return out
	}

	if maxWidth < 0 {
		maxWidth = 0
	}
	tail, tailWidth, _ := fit(tail, maxWidth)
	target := maxWidth - tailWidth

	used := 0
	last := -1
	for i, p := range t.parts {
		kept, w, full := fit(p.Text, target-used)
		used += w
		if kept != "" {
			out.Append(kept, p.Style)
			last = i
		}
		if !full {
			break
		}
	}

	tailStyle := t.parts[0].Style
	if last >= 0 {
		tailStyle = t.parts[last].Style
	}
	out.Append(tail, tailStyle)
	return out
}

// fit returns the longest prefix of s whose width is at most budget, its
// width, and whether all of s fit.
func fit(s string, budget int) (string, int, bool) {
	width := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		_, next, w, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > budget {
			return s[:len(s)-len(rest)], width, false
		}
		width += w
		rest, state = next, newState
	}
	return s, width, true
}
