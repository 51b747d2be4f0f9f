package style

import "fmt"

// ClickAction names what a click event does.
type ClickAction string

const (
	OpenURL         ClickAction = "open_url"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

// HoverAction names what a hover event shows.
type HoverAction string

const (
	ShowText   HoverAction = "show_text"
	ShowItem   HoverAction = "show_item"
	ShowEntity HoverAction = "show_entity"
)

// ClickEvent is an opaque interactive click handle. Two events are the same
// handle when their action and value are equal.
type ClickEvent struct {
	Action ClickAction `json:"action"`
	Value  string      `json:"value"`
}

func (e ClickEvent) String() string {
	return fmt.Sprintf("%s(%q)", e.Action, e.Value)
}

// HoverEvent is an opaque interactive hover handle.
type HoverEvent struct {
	Action HoverAction `json:"action"`
	Value  string      `json:"value"`
}

func (e HoverEvent) String() string {
	return fmt.Sprintf("%s(%q)", e.Action, e.Value)
}

func sameEvent[E comparable](a, b *E) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneEvent[E any](e *E) *E {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
