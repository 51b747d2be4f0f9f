// Package style holds the immutable formatting state of one styled run and
// the differential encoder that turns it into legacy § control codes.
//
// # Snapshots
//
// A Style is a value: colour, five toggles (obfuscated, bold, strikethrough,
// underlined, italic) and two optional interactive events. It is built once
// from a Descriptor, optionally inheriting unset fields from a parent, and is
// then only ever copied with changes:
//
//	base := style.FromDescriptor(d, nil)
//	loud := base.With(style.Bold(true), style.Underlined(true))
//
// # Encoding
//
// Serialize produces the shortest control string that turns the effect of a
// previous Style into this one:
//
//	prev: {red}        next: {red bold}    -> §l
//	prev: {none}       next: {red bold}    -> §c§l
//	prev: {red bold}   next: {red}         -> §r§c
//	prev: {red bold}   next: {blue bold}   -> §r§9§l
//	prev: {none bold}  next: {red bold}    -> §c§l
//
// The legacy scheme has no "off" tokens, so any transition that turns a
// toggle off, or drops an event, falls back to §r and a full re-encode. A
// colour token clears every toggle after it, so a colour change is always
// written in full.
//
// In ModeFull, events are written as indices into tables owned by the run
// sequence: §[n] for click events, §<n> for hover events. Indices are
// 1-based and assigned on first sight by an Indexer, normally EventTables.
package style
