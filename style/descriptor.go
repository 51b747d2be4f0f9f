package style

import "github.com/Neumenon/stylecode/chatfmt"

// Descriptor is the external formatting description of a run, as found on a
// text component. A nil toggle, a nil event or a None colour means "unset":
// the value is inherited from the parent descriptor.
type Descriptor struct {
	Color         chatfmt.Color
	Obfuscated    *bool
	Bold          *bool
	Strikethrough *bool
	Underlined    *bool
	Italic        *bool
	ClickEvent    *ClickEvent
	HoverEvent    *HoverEvent
}

// ApplyTo fills every unset field of d from parent. Fields set on d win.
func (d Descriptor) ApplyTo(parent Descriptor) Descriptor {
	if d.Color.IsNone() {
		d.Color = parent.Color
	}
	if d.Obfuscated == nil {
		d.Obfuscated = parent.Obfuscated
	}
	if d.Bold == nil {
		d.Bold = parent.Bold
	}
	if d.Strikethrough == nil {
		d.Strikethrough = parent.Strikethrough
	}
	if d.Underlined == nil {
		d.Underlined = parent.Underlined
	}
	if d.Italic == nil {
		d.Italic = parent.Italic
	}
	if d.ClickEvent == nil {
		d.ClickEvent = parent.ClickEvent
	}
	if d.HoverEvent == nil {
		d.HoverEvent = parent.HoverEvent
	}
	return d
}

// FromDescriptor resolves d into a Style. When parent is non-nil, fields
// left unset on d cascade from parent. Toggles still unset afterwards are
// off.
func FromDescriptor(d Descriptor, parent *Descriptor) Style {
	if parent != nil {
		d = d.ApplyTo(*parent)
	}
	return Style{
		color:         d.Color,
		obfuscated:    isSet(d.Obfuscated),
		bold:          isSet(d.Bold),
		strikethrough: isSet(d.Strikethrough),
		underlined:    isSet(d.Underlined),
		italic:        isSet(d.Italic),
		click:         cloneEvent(d.ClickEvent),
		hover:         cloneEvent(d.HoverEvent),
	}
}

// ToDescriptor converts s back into a descriptor with every toggle set
// explicitly. The colour is None when s has no colour.
func (s Style) ToDescriptor() Descriptor {
	return Descriptor{
		Color:         s.color,
		Obfuscated:    Flag(s.obfuscated),
		Bold:          Flag(s.bold),
		Strikethrough: Flag(s.strikethrough),
		Underlined:    Flag(s.underlined),
		Italic:        Flag(s.italic),
		ClickEvent:    cloneEvent(s.click),
		HoverEvent:    cloneEvent(s.hover),
	}
}

// Flag returns a pointer to v, for filling Descriptor toggles.
func Flag(v bool) *bool {
	return &v
}

func isSet(p *bool) bool {
	return p != nil && *p
}
