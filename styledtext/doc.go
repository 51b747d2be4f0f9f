// Package styledtext is an ordered sequence of styled runs and the owner of
// the event tables its runs are serialized against.
//
// A StyledText is built from a JSON text component (FromComponent), from
// explicit parts (New, Append) or by decoding a legacy control string
// (Parse). String walks the parts left to right and prefixes each run with
// the difference from the previous run's style:
//
//	t := styledtext.New(
//		styledtext.Part{Text: "Hello ", Style: style.New(style.Color(chatfmt.Gold.Color()))},
//		styledtext.Part{Text: "world", Style: style.New(style.Color(chatfmt.Gold.Color()), style.Bold(true))},
//	)
//	t.String(style.ModeDefault) // "§6Hello §lworld"
//
// # Decoding
//
// Parse is the inverse of String. A colour token clears toggles and events
// before setting the colour, as the legacy renderer does; toggle tokens
// switch a toggle on, and §r clears everything. Event tokens
// §[n] and §<n> are resolved through ParseOptions.Events. Parsing is tolerant
// by default: malformed tokens are kept as literal text and reported as
// warnings.
//
// Run text is not escaped. A literal § inside a run is indistinguishable
// from a control token when decoded.
package styledtext
