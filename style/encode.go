package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Neumenon/stylecode/chatfmt"
)

// Mode selects how much of a style Serialize writes.
type Mode uint8

const (
	ModeNone    Mode = iota // no control codes at all
	ModeDefault             // colour and toggles
	ModeFull                // colour, toggles and event references
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeDefault:
		return "default"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses "none", "default" or "full".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ModeNone, nil
	case "default", "":
		return ModeDefault, nil
	case "full", "events":
		return ModeFull, nil
	default:
		return ModeNone, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

// Serialize returns the control string that, appended after prev's effect,
// reproduces the effect of s. A nil prev means a clean slate.
//
// refs resolves event indices in ModeFull and may be nil in the other
// modes. With a nil refs, ModeFull writes no event tokens.
func (s Style) Serialize(prev *Style, mode Mode, refs Indexer) string {
	if mode == ModeNone {
		return ""
	}
	events := mode == ModeFull && refs != nil

	var sb strings.Builder
	if prev != nil {
		if s.diffEligible(*prev) {
			if s.writeDiff(&sb, *prev, events, refs) {
				return sb.String()
			}
			sb.Reset()
			sb.WriteString(chatfmt.Reset.String())
		} else if !prev.color.IsNone() {
			sb.WriteString(chatfmt.Reset.String())
		}
	}
	s.writeFull(&sb, events, refs)
	return sb.String()
}

// diffEligible reports whether a transition from prev could be expressed
// without restating the whole style. A colour token clears every toggle
// and event after it, so only a missing or unchanged colour qualifies.
// A new colour after a colourless prev is written in full without a reset
// since the colour token clears the slate itself.
func (s Style) diffEligible(prev Style) bool {
	return s.color.IsNone() || s.color == prev.color
}

// writeDiff writes only what changed since prev. It returns false when the
// transition needs something the legacy scheme cannot say incrementally,
// such as switching a toggle off or dropping an event.
func (s Style) writeDiff(sb *strings.Builder, prev Style, events bool, refs Indexer) bool {
	for _, f := range toggles {
		was, is := prev.Has(f), s.Has(f)
		if was && !is {
			return false
		}
		if !was && is {
			sb.WriteString(f.String())
		}
	}

	if !events {
		return true
	}

	if prev.click != nil && s.click == nil {
		return false
	}
	if !sameEvent(prev.click, s.click) {
		writeClick(sb, *s.click, refs)
	}

	if prev.hover != nil && s.hover == nil {
		return false
	}
	if !sameEvent(prev.hover, s.hover) {
		writeHover(sb, *s.hover, refs)
	}
	return true
}

// writeFull writes the complete state of s from a clean slate.
func (s Style) writeFull(sb *strings.Builder, events bool, refs Indexer) {
	sb.WriteString(chatfmt.Code(s.color))

	for _, f := range toggles {
		if s.Has(f) {
			sb.WriteString(f.String())
		}
	}

	if !events {
		return
	}
	if s.click != nil {
		writeClick(sb, *s.click, refs)
	}
	if s.hover != nil {
		writeHover(sb, *s.hover, refs)
	}
}

func writeClick(sb *strings.Builder, e ClickEvent, refs Indexer) {
	sb.WriteString(chatfmt.PrefixString)
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(refs.ClickIndex(e)))
	sb.WriteByte(']')
}

func writeHover(sb *strings.Builder, e HoverEvent, refs Indexer) {
	sb.WriteString(chatfmt.PrefixString)
	sb.WriteByte('<')
	sb.WriteString(strconv.Itoa(refs.HoverIndex(e)))
	sb.WriteByte('>')
}
