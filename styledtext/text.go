package styledtext

import (
	"strings"

	"github.com/Neumenon/stylecode/style"
)

// Part is one run: a text fragment and the style it is displayed in.
type Part struct {
	Text  string
	Style style.Style
}

// StyledText is an ordered sequence of parts in display order. It owns the
// event tables that §[n] and §<n> indices refer to; the tables only grow
// across calls to String.
//
// A StyledText is not safe for concurrent use.
type StyledText struct {
	parts  []Part
	events style.EventTables
}

// New returns a StyledText holding parts. Empty parts are dropped.
func New(parts ...Part) *StyledText {
	t := &StyledText{}
	for _, p := range parts {
		t.Append(p.Text, p.Style)
	}
	return t
}

// Append adds a run at the end. Empty text is ignored.
func (t *StyledText) Append(text string, s style.Style) *StyledText {
	if text != "" {
		t.parts = append(t.parts, Part{Text: text, Style: s})
	}
	return t
}

// Parts returns a copy of the parts.
func (t *StyledText) Parts() []Part {
	return append([]Part(nil), t.parts...)
}

// Len returns the number of parts.
func (t *StyledText) Len() int {
	return len(t.parts)
}

// Events returns the event tables owned by t.
func (t *StyledText) Events() *style.EventTables {
	return &t.events
}

// String serializes the whole sequence. Each part is prefixed with the
// control string that moves from the previous part's style to its own.
func (t *StyledText) String(mode style.Mode) string {
	var sb strings.Builder
	var prev *style.Style
	for i := range t.parts {
		p := &t.parts[i]
		sb.WriteString(p.Style.Serialize(prev, mode, &t.events))
		sb.WriteString(p.Text)
		prev = &p.Style
	}
	return sb.String()
}

// Unformatted returns the concatenated text without any control codes.
func (t *StyledText) Unformatted() string {
	return t.String(style.ModeNone)
}

// Equal reports whether t and o have the same parts. Event tables are not
// compared.
func (t *StyledText) Equal(o *StyledText) bool {
	if len(t.parts) != len(o.parts) {
		return false
	}
	for i := range t.parts {
		if t.parts[i].Text != o.parts[i].Text || !t.parts[i].Style.Equal(o.parts[i].Style) {
			return false
		}
	}
	return true
}

// withEvents returns an empty StyledText whose tables are a copy of src.
func withEvents(src *style.EventTables) *StyledText {
	t := &StyledText{}
	if src != nil {
		t.events.Click = *style.NewRefTable(src.Click.Entries()...)
		t.events.Hover = *style.NewRefTable(src.Hover.Entries()...)
	}
	return t
}
