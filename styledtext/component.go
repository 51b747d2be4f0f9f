package styledtext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Neumenon/stylecode/chatfmt"
	"github.com/Neumenon/stylecode/style"
)

// Component is a JSON text component: a text node with optional formatting
// and children that inherit whatever they leave unset.
//
//	{"text":"Hi ","color":"gold","extra":[{"text":"there","bold":true}]}
type Component struct {
	Text          string            `json:"text"`
	Color         string            `json:"color,omitempty"`
	Obfuscated    *bool             `json:"obfuscated,omitempty"`
	Bold          *bool             `json:"bold,omitempty"`
	Strikethrough *bool             `json:"strikethrough,omitempty"`
	Underlined    *bool             `json:"underlined,omitempty"`
	Italic        *bool             `json:"italic,omitempty"`
	ClickEvent    *style.ClickEvent `json:"clickEvent,omitempty"`
	HoverEvent    *style.HoverEvent `json:"hoverEvent,omitempty"`
	Extra         []Component       `json:"extra,omitempty"`
}

// Descriptor returns the formatting set directly on c.
func (c *Component) Descriptor() (style.Descriptor, error) {
	col, err := chatfmt.ParseColor(c.Color)
	if err != nil {
		return style.Descriptor{}, err
	}
	return style.Descriptor{
		Color:         col,
		Obfuscated:    c.Obfuscated,
		Bold:          c.Bold,
		Strikethrough: c.Strikethrough,
		Underlined:    c.Underlined,
		Italic:        c.Italic,
		ClickEvent:    c.ClickEvent,
		HoverEvent:    c.HoverEvent,
	}, nil
}

// FromComponent flattens a component tree into parts, depth first. Each node
// inherits unset fields from its resolved parent.
func FromComponent(c *Component) (*StyledText, error) {
	t := &StyledText{}
	if err := t.appendComponent(c, nil); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *StyledText) appendComponent(c *Component, parent *style.Descriptor) error {
	d, err := c.Descriptor()
	if err != nil {
		return fmt.Errorf("component %q: %w", c.Text, err)
	}
	t.Append(c.Text, style.FromDescriptor(d, parent))

	resolved := d
	if parent != nil {
		resolved = d.ApplyTo(*parent)
	}
	for i := range c.Extra {
		if err := t.appendComponent(&c.Extra[i], &resolved); err != nil {
			return err
		}
	}
	return nil
}

// ParseComponentJSON decodes a JSON component. A bare JSON string is
// accepted as unstyled text, and an array as a list of sibling components.
func ParseComponentJSON(data []byte) (*StyledText, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty component")
	}

	var c Component
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &c.Text); err != nil {
			return nil, fmt.Errorf("decode component: %w", err)
		}
	case '[':
		if err := json.Unmarshal(data, &c.Extra); err != nil {
			return nil, fmt.Errorf("decode component: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode component: %w", err)
		}
	}
	return FromComponent(&c)
}

// ToComponent returns a flat component: an empty root with one child per
// part, each carrying its complete style.
func (t *StyledText) ToComponent() *Component {
	root := &Component{Extra: make([]Component, 0, len(t.parts))}
	for _, p := range t.parts {
		root.Extra = append(root.Extra, partComponent(p))
	}
	return root
}

func partComponent(p Part) Component {
	s := p.Style
	c := Component{Text: p.Text}
	if !s.Color().IsNone() {
		c.Color = s.Color().String()
	}
	c.Obfuscated = onlyTrue(s.Obfuscated())
	c.Bold = onlyTrue(s.Bold())
	c.Strikethrough = onlyTrue(s.Strikethrough())
	c.Underlined = onlyTrue(s.Underlined())
	c.Italic = onlyTrue(s.Italic())
	if e, ok := s.ClickEvent(); ok {
		c.ClickEvent = &e
	}
	if e, ok := s.HoverEvent(); ok {
		c.HoverEvent = &e
	}
	return c
}

func onlyTrue(v bool) *bool {
	if !v {
		return nil
	}
	return style.Flag(true)
}
