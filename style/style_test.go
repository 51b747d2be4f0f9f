package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/stylecode/chatfmt"
)

func TestWith_DoesNotModifyReceiver(t *testing.T) {
	base := New(Bold(true))
	derived := base.With(Italic(true), Color(chatfmt.Red.Color()))

	assert.True(t, base.Bold())
	assert.False(t, base.Italic())
	assert.True(t, base.Color().IsNone())

	assert.True(t, derived.Bold())
	assert.True(t, derived.Italic())
	assert.Equal(t, chatfmt.Red.Color(), derived.Color())
}

func TestWith_EachField(t *testing.T) {
	click := &ClickEvent{Action: RunCommand, Value: "/spawn"}
	hover := &HoverEvent{Action: ShowText, Value: "go home"}

	s := New(
		Obfuscated(true),
		Bold(true),
		Strikethrough(true),
		Underlined(true),
		Italic(true),
		Click(click),
		Hover(hover),
	)

	assert.True(t, s.Obfuscated())
	assert.True(t, s.Bold())
	assert.True(t, s.Strikethrough())
	assert.True(t, s.Underlined())
	assert.True(t, s.Italic())

	c, ok := s.ClickEvent()
	require.True(t, ok)
	assert.Equal(t, *click, c)
	h, ok := s.HoverEvent()
	require.True(t, ok)
	assert.Equal(t, *hover, h)

	cleared := s.With(Click(nil), Hover(nil), Bold(false))
	_, ok = cleared.ClickEvent()
	assert.False(t, ok)
	_, ok = cleared.HoverEvent()
	assert.False(t, ok)
	assert.False(t, cleared.Bold())
}

func TestClick_CopiesEvent(t *testing.T) {
	e := &ClickEvent{Action: OpenURL, Value: "https://example.com"}
	s := New(Click(e))
	e.Value = "changed"

	got, _ := s.ClickEvent()
	assert.Equal(t, "https://example.com", got.Value)
}

func TestToggle(t *testing.T) {
	s := New(Toggle(chatfmt.Underline, true), Toggle(chatfmt.Red, true))
	assert.True(t, s.Underlined())
	assert.True(t, s.Has(chatfmt.Underline))
	assert.False(t, s.Has(chatfmt.Red))
	assert.True(t, s.Color().IsNone())
}

func TestWithColor(t *testing.T) {
	s, err := Empty.WithColor(chatfmt.Gold)
	require.NoError(t, err)
	assert.Equal(t, 0xFFAA00, s.Color().Int())

	for _, f := range []chatfmt.Formatting{chatfmt.Bold, chatfmt.Reset, chatfmt.Italic} {
		t.Run(f.Name(), func(t *testing.T) {
			got, err := s.WithColor(f)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.True(t, got.Equal(s))
		})
	}
}

func TestEqual(t *testing.T) {
	a := New(Bold(true), Click(&ClickEvent{Action: OpenURL, Value: "x"}))
	b := New(Bold(true), Click(&ClickEvent{Action: OpenURL, Value: "x"}))
	c := New(Bold(true), Click(&ClickEvent{Action: OpenURL, Value: "y"}))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a.With(Italic(true))))
	assert.True(t, Empty.IsEmpty())
	assert.False(t, a.IsEmpty())
}

func TestString(t *testing.T) {
	s := New(Color(chatfmt.Red.Color()), Bold(true), Click(&ClickEvent{Action: OpenURL, Value: "u"}))
	assert.Equal(t, `Style{color=red bold click=open_url("u")}`, s.String())
	assert.Equal(t, "Style{color=none}", Empty.String())
}

func TestFromDescriptor_NoParent(t *testing.T) {
	d := Descriptor{
		Color:  chatfmt.RGB(0x123456),
		Bold:   Flag(true),
		Italic: Flag(false),
	}
	s := FromDescriptor(d, nil)

	assert.Equal(t, chatfmt.RGB(0x123456), s.Color())
	assert.True(t, s.Bold())
	assert.False(t, s.Italic())
	assert.False(t, s.Underlined())
}

func TestFromDescriptor_InheritsUnsetFields(t *testing.T) {
	hover := &HoverEvent{Action: ShowText, Value: "parent"}
	parent := Descriptor{
		Color:      chatfmt.Aqua.Color(),
		Bold:       Flag(true),
		Italic:     Flag(true),
		HoverEvent: hover,
	}
	child := Descriptor{
		Italic:     Flag(false),
		Underlined: Flag(true),
		ClickEvent: &ClickEvent{Action: SuggestCommand, Value: "/msg"},
	}

	s := FromDescriptor(child, &parent)

	assert.Equal(t, chatfmt.Aqua.Color(), s.Color())
	assert.True(t, s.Bold(), "bold cascades from parent")
	assert.False(t, s.Italic(), "child italic=false wins")
	assert.True(t, s.Underlined())
	_, ok := s.ClickEvent()
	assert.True(t, ok)
	h, ok := s.HoverEvent()
	require.True(t, ok)
	assert.Equal(t, *hover, h)
}

func TestToDescriptor_RoundTrip(t *testing.T) {
	s := New(
		Color(chatfmt.RGB(0xABCDEF)),
		Strikethrough(true),
		Hover(&HoverEvent{Action: ShowItem, Value: "diamond"}),
	)
	d := s.ToDescriptor()

	require.NotNil(t, d.Bold)
	assert.False(t, *d.Bold)
	require.NotNil(t, d.Strikethrough)
	assert.True(t, *d.Strikethrough)
	assert.Nil(t, d.ClickEvent)
	assert.True(t, FromDescriptor(d, nil).Equal(s))

	assert.True(t, Empty.ToDescriptor().Color.IsNone())
}
