package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Neumenon/stylecode/chatfmt"
)

// ErrInvalidArgument is returned when a transform is given a value it cannot
// represent, such as a non-colour formatting code passed to WithColor.
var ErrInvalidArgument = errors.New("invalid argument")

// Style is the fully resolved formatting state of one styled run.
// The zero value is the empty style: no colour, no toggles, no events.
type Style struct {
	color         chatfmt.Color
	obfuscated    bool
	bold          bool
	strikethrough bool
	underlined    bool
	italic        bool
	click         *ClickEvent
	hover         *HoverEvent
}

// Empty is the style with nothing set.
var Empty = Style{}

// Option replaces one field of a Style.
type Option func(*Style)

// Color sets the colour. chatfmt.None clears it.
func Color(c chatfmt.Color) Option {
	return func(s *Style) { s.color = c }
}

func Obfuscated(v bool) Option {
	return func(s *Style) { s.obfuscated = v }
}

func Bold(v bool) Option {
	return func(s *Style) { s.bold = v }
}

func Strikethrough(v bool) Option {
	return func(s *Style) { s.strikethrough = v }
}

func Underlined(v bool) Option {
	return func(s *Style) { s.underlined = v }
}

func Italic(v bool) Option {
	return func(s *Style) { s.italic = v }
}

// Toggle sets the toggle selected by a formatting code (k, l, m, n or o).
// Any other code leaves the style unchanged.
func Toggle(f chatfmt.Formatting, v bool) Option {
	return func(s *Style) {
		if p := s.toggle(f); p != nil {
			*p = v
		}
	}
}

// Click sets the click event; nil removes it.
func Click(e *ClickEvent) Option {
	e = cloneEvent(e)
	return func(s *Style) { s.click = e }
}

// Hover sets the hover event; nil removes it.
func Hover(e *HoverEvent) Option {
	e = cloneEvent(e)
	return func(s *Style) { s.hover = e }
}

// New returns the empty style with opts applied.
func New(opts ...Option) Style {
	return Empty.With(opts...)
}

// With returns a copy of s with opts applied in order. s is not modified.
func (s Style) With(opts ...Option) Style {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithColor returns a copy of s coloured with a palette entry.
func (s Style) WithColor(f chatfmt.Formatting) (Style, error) {
	if !f.IsColor() {
		return s, fmt.Errorf("%w: formatting %s is not a color", ErrInvalidArgument, f.Name())
	}
	return s.With(Color(f.Color())), nil
}

func (s Style) Color() chatfmt.Color { return s.color }
func (s Style) Obfuscated() bool     { return s.obfuscated }
func (s Style) Bold() bool           { return s.bold }
func (s Style) Strikethrough() bool  { return s.strikethrough }
func (s Style) Underlined() bool     { return s.underlined }
func (s Style) Italic() bool         { return s.italic }

// Has reports whether the toggle selected by f is on.
func (s Style) Has(f chatfmt.Formatting) bool {
	if p := s.toggle(f); p != nil {
		return *p
	}
	return false
}

// ClickEvent returns the click event, if any.
func (s Style) ClickEvent() (ClickEvent, bool) {
	if s.click == nil {
		return ClickEvent{}, false
	}
	return *s.click, true
}

// HoverEvent returns the hover event, if any.
func (s Style) HoverEvent() (HoverEvent, bool) {
	if s.hover == nil {
		return HoverEvent{}, false
	}
	return *s.hover, true
}

// IsEmpty reports whether s has no colour, toggles or events.
func (s Style) IsEmpty() bool {
	return s.Equal(Empty)
}

// Equal reports whether all fields of s and o are equal. Events compare by
// value, not by pointer.
func (s Style) Equal(o Style) bool {
	return s.color == o.color &&
		s.obfuscated == o.obfuscated &&
		s.bold == o.bold &&
		s.strikethrough == o.strikethrough &&
		s.underlined == o.underlined &&
		s.italic == o.italic &&
		sameEvent(s.click, o.click) &&
		sameEvent(s.hover, o.hover)
}

func (s Style) String() string {
	var sb strings.Builder
	sb.WriteString("Style{color=")
	sb.WriteString(s.color.String())
	for _, f := range toggles {
		if s.Has(f) {
			sb.WriteByte(' ')
			sb.WriteString(f.Name())
		}
	}
	if s.click != nil {
		sb.WriteString(" click=")
		sb.WriteString(s.click.String())
	}
	if s.hover != nil {
		sb.WriteString(" hover=")
		sb.WriteString(s.hover.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// toggles lists the five toggles in encoding order.
var toggles = [...]chatfmt.Formatting{
	chatfmt.Obfuscated,
	chatfmt.Bold,
	chatfmt.Strikethrough,
	chatfmt.Underline,
	chatfmt.Italic,
}

func (s *Style) toggle(f chatfmt.Formatting) *bool {
	switch f {
	case chatfmt.Obfuscated:
		return &s.obfuscated
	case chatfmt.Bold:
		return &s.bold
	case chatfmt.Strikethrough:
		return &s.strikethrough
	case chatfmt.Underline:
		return &s.underlined
	case chatfmt.Italic:
		return &s.italic
	}
	return nil
}
