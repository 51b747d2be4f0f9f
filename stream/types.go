// Package stream implements the framed transcript format for styled text.
//
// A transcript is a sequence of text frames, each one header line followed by
// an exact-length payload:
//
//	@frame{v=1 sid=N seq=N kind=K len=N [crc=X] [base=sha256:X] [final=true]}\n
//	<payload bytes>\n
//
// Message text is carried as a full-mode control string (kind=text). The
// event tables its §[n] and §<n> tokens refer to travel in a preceding
// events frame (kind=events, JSON), and the text frame's base field pins the
// SHA-256 of that events payload so a reader can tell the pair belongs
// together.
//
// Frame headers are not part of the styled text. Payloads are passed to the
// styledtext decoder unchanged.
package stream

import (
	"fmt"
)

// Version is the frame format version.
const Version uint8 = 1

// FrameKind indicates what a frame's payload holds.
type FrameKind uint8

const (
	KindText   FrameKind = 0 // Full-mode control string
	KindEvents FrameKind = 1 // JSON event tables for the next text frame
	KindAck    FrameKind = 2 // Acknowledgement
	KindErr    FrameKind = 3 // Error message
)

// String returns the kind name.
func (k FrameKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEvents:
		return "events"
	case KindAck:
		return "ack"
	case KindErr:
		return "err"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// ParseKind parses a kind name or its numeric value.
func ParseKind(s string) (FrameKind, bool) {
	switch s {
	case "text", "0":
		return KindText, true
	case "events", "1":
		return KindEvents, true
	case "ack", "2":
		return KindAck, true
	case "err", "3":
		return KindErr, true
	default:
		return 0, false
	}
}

// Frame is a single transcript frame.
type Frame struct {
	Version uint8     // Format version (must be 1)
	SID     uint64    // Stream identifier, e.g. one chat channel
	Seq     uint64    // Sequence number, monotonic per SID
	Kind    FrameKind // Frame kind
	Payload []byte    // UTF-8 payload

	CRC   *uint32   // CRC-32 of payload (nil if not present)
	Base  *[32]byte // SHA-256 of the events payload this frame depends on
	Final bool      // End-of-stream marker
}

// HasCRC returns true if CRC is present.
func (f *Frame) HasCRC() bool {
	return f.CRC != nil
}

// HasBase returns true if base hash is present.
func (f *Frame) HasBase() bool {
	return f.Base != nil
}

// MaxPayloadSize is the default maximum payload size (4 MiB).
const MaxPayloadSize = 4 * 1024 * 1024

// ParseError is returned for malformed frame headers.
type ParseError struct {
	Reason string
	Offset int
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("stream: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("stream: %s", e.Reason)
}

// CRCMismatchError is returned when CRC verification fails.
type CRCMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("stream: CRC mismatch: expected %08x, got %08x", e.Expected, e.Got)
}

// BaseMismatchError is returned when a text frame's base hash does not match
// the events frame before it.
type BaseMismatchError struct {
	Expected [32]byte
	Got      [32]byte
}

func (e *BaseMismatchError) Error() string {
	return fmt.Sprintf("stream: base hash mismatch: expected %s, got %s", HashToHex(e.Expected)[:16], HashToHex(e.Got)[:16])
}
