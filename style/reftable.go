package style

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRefIndex is returned when a table index has not been assigned.
var ErrRefIndex = errors.New("reference index out of bounds")

// RefTable assigns stable 1-based indices to handles in the order they are
// first seen. It only grows. The zero value is an empty table ready to use.
//
// A RefTable is not safe for concurrent use.
type RefTable[K comparable] struct {
	index   map[K]int
	entries []K
}

// NewRefTable returns a table pre-filled with entries, indexed 1..n in
// order. Duplicate entries keep their first index.
func NewRefTable[K comparable](entries ...K) *RefTable[K] {
	t := &RefTable[K]{}
	for _, e := range entries {
		t.IndexOf(e)
	}
	return t
}

// IndexOf returns the index of k, registering it first if needed.
func (t *RefTable[K]) IndexOf(k K) int {
	if i, ok := t.index[k]; ok {
		return i
	}
	if t.index == nil {
		t.index = make(map[K]int)
	}
	t.entries = append(t.entries, k)
	i := len(t.entries)
	t.index[k] = i
	return i
}

// Lookup returns the index of k without registering it.
func (t *RefTable[K]) Lookup(k K) (int, bool) {
	i, ok := t.index[k]
	return i, ok
}

// Get returns the handle registered at index i.
func (t *RefTable[K]) Get(i int) (K, error) {
	if i < 1 || i > len(t.entries) {
		var zero K
		return zero, fmt.Errorf("%w: %d (len=%d)", ErrRefIndex, i, len(t.entries))
	}
	return t.entries[i-1], nil
}

// Len returns the number of registered handles.
func (t *RefTable[K]) Len() int {
	return len(t.entries)
}

// Entries returns the handles in index order. The slice is a copy.
func (t *RefTable[K]) Entries() []K {
	return append([]K(nil), t.entries...)
}

// Indexer resolves events to the indices written in §[n] and §<n> tokens.
type Indexer interface {
	ClickIndex(ClickEvent) int
	HoverIndex(HoverEvent) int
}

// EventTables is the pair of tables owned by one run sequence.
type EventTables struct {
	Click RefTable[ClickEvent]
	Hover RefTable[HoverEvent]
}

var _ Indexer = (*EventTables)(nil)

func (e *EventTables) ClickIndex(c ClickEvent) int { return e.Click.IndexOf(c) }
func (e *EventTables) HoverIndex(h HoverEvent) int { return e.Hover.IndexOf(h) }

type eventTablesJSON struct {
	Click []ClickEvent `json:"click"`
	Hover []HoverEvent `json:"hover"`
}

// MarshalJSON writes both tables as arrays in index order.
func (e *EventTables) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventTablesJSON{
		Click: nonNil(e.Click.Entries()),
		Hover: nonNil(e.Hover.Entries()),
	})
}

// UnmarshalJSON replaces the tables with the decoded arrays.
func (e *EventTables) UnmarshalJSON(data []byte) error {
	var raw eventTablesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode event tables: %w", err)
	}
	*e = EventTables{
		Click: *NewRefTable(raw.Click...),
		Hover: *NewRefTable(raw.Hover...),
	}
	return nil
}

func nonNil[K any](s []K) []K {
	if s == nil {
		return []K{}
	}
	return s
}
