package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Neumenon/stylecode/style"
	"github.com/Neumenon/stylecode/styledtext"
)

// ErrOrphanEvents is returned when an events frame is not followed by the
// text frame it belongs to.
var ErrOrphanEvents = errors.New("stream: events frame without text")

// Message is one decoded transcript entry.
type Message struct {
	SID  uint64
	Seq  uint64
	Text *styledtext.StyledText
}

// TranscriptWriter appends styled messages to a transcript on one stream.
type TranscriptWriter struct {
	w   *Writer
	sid uint64
	seq uint64
}

// NewTranscriptWriter writes messages for stream sid through w.
func NewTranscriptWriter(w *Writer, sid uint64) *TranscriptWriter {
	return &TranscriptWriter{w: w, sid: sid}
}

// Write serializes t in full mode and writes it. When t references any
// events, an events frame is written first and the text frame's base pins
// its hash.
func (tw *TranscriptWriter) Write(t *styledtext.StyledText) error {
	payload := []byte(t.String(style.ModeFull))

	var base *[32]byte
	if ev := t.Events(); ev.Click.Len() > 0 || ev.Hover.Len() > 0 {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("encode events: %w", err)
		}
		tw.seq++
		if err := tw.w.WriteEvents(tw.sid, tw.seq, data); err != nil {
			return err
		}
		h := EventsHash(data)
		base = &h
	}

	tw.seq++
	return tw.w.WriteText(tw.sid, tw.seq, payload, base)
}

// Close writes a final ack frame for the stream.
func (tw *TranscriptWriter) Close() error {
	tw.seq++
	return tw.w.WriteFrame(&Frame{
		Version: Version,
		SID:     tw.sid,
		Seq:     tw.seq,
		Kind:    KindAck,
		Final:   true,
	})
}

// TranscriptReader decodes messages written by TranscriptWriter.
type TranscriptReader struct {
	r    *Reader
	opts styledtext.ParseOptions

	pending     *style.EventTables
	pendingHash [32]byte
}

// NewTranscriptReader reads messages from r. opts.Events is ignored; each
// message is decoded against the events frame that precedes it.
func NewTranscriptReader(r *Reader, opts styledtext.ParseOptions) *TranscriptReader {
	return &TranscriptReader{r: r, opts: opts}
}

// Next returns the next message, or io.EOF at the end of the transcript.
// Ack frames are skipped and err frames are returned as errors.
func (tr *TranscriptReader) Next() (*Message, error) {
	for {
		f, err := tr.r.Next()
		if errors.Is(err, io.EOF) {
			if tr.pending != nil {
				return nil, ErrOrphanEvents
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		switch f.Kind {
		case KindAck:
			continue
		case KindErr:
			return nil, fmt.Errorf("stream: sid=%d seq=%d: remote error: %s", f.SID, f.Seq, f.Payload)
		case KindEvents:
			if tr.pending != nil {
				return nil, ErrOrphanEvents
			}
			var ev style.EventTables
			if err := json.Unmarshal(f.Payload, &ev); err != nil {
				return nil, fmt.Errorf("stream: seq=%d: %w", f.Seq, err)
			}
			tr.pending = &ev
			tr.pendingHash = EventsHash(f.Payload)
		case KindText:
			return tr.decodeText(f)
		default:
			return nil, &ParseError{Reason: "unexpected frame kind " + f.Kind.String(), Offset: -1}
		}
	}
}

func (tr *TranscriptReader) decodeText(f *Frame) (*Message, error) {
	events := tr.pending
	tr.pending = nil

	if f.Base != nil {
		if events == nil {
			return nil, &BaseMismatchError{Expected: *f.Base}
		}
		if *f.Base != tr.pendingHash {
			return nil, &BaseMismatchError{Expected: *f.Base, Got: tr.pendingHash}
		}
	}

	opts := tr.opts
	opts.Events = events
	res, err := styledtext.ParseWithOptions(string(f.Payload), opts)
	if err != nil {
		return nil, fmt.Errorf("stream: seq=%d: %w", f.Seq, err)
	}
	return &Message{SID: f.SID, Seq: f.Seq, Text: res.Text}, nil
}

// ReadAll reads every remaining message.
func (tr *TranscriptReader) ReadAll() ([]*Message, error) {
	var out []*Message
	for {
		m, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}
