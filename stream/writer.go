package stream

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer emits transcript frames to an io.Writer.
type Writer struct {
	w       io.Writer
	withCRC bool
}

// NewWriter returns a Writer that leaves the crc field out unless a frame
// carries one.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewWriterWithCRC returns a Writer that checksums every non-empty payload.
func NewWriterWithCRC(w io.Writer) *Writer {
	return &Writer{w: w, withCRC: true}
}

// WriteFrame writes f as a header line, its payload and a separating newline.
func (w *Writer) WriteFrame(f *Frame) error {
	if _, err := io.WriteString(w.w, w.header(f)); err != nil {
		return fmt.Errorf("stream: write header: %w", err)
	}
	body := make([]byte, 0, len(f.Payload)+1)
	body = append(append(body, f.Payload...), '\n')
	if _, err := w.w.Write(body); err != nil {
		return fmt.Errorf("stream: write payload: %w", err)
	}
	return nil
}

// header renders the @frame{...} line. Optional fields follow len in the
// order crc, base, final.
func (w *Writer) header(f *Frame) string {
	version := f.Version
	if version == 0 {
		version = Version
	}
	fields := []string{
		"v=" + strconv.Itoa(int(version)),
		"sid=" + strconv.FormatUint(f.SID, 10),
		"seq=" + strconv.FormatUint(f.Seq, 10),
		"kind=" + f.Kind.String(),
		"len=" + strconv.Itoa(len(f.Payload)),
	}

	switch {
	case f.CRC != nil:
		fields = append(fields, fmt.Sprintf("crc=%08x", *f.CRC))
	case w.withCRC && len(f.Payload) > 0:
		fields = append(fields, fmt.Sprintf("crc=%08x", ComputeCRC(f.Payload)))
	}
	if f.Base != nil {
		fields = append(fields, "base=sha256:"+HashToHex(*f.Base))
	}
	if f.Final {
		fields = append(fields, "final=true")
	}
	return "@frame{" + strings.Join(fields, " ") + "}\n"
}

func (w *Writer) write(sid, seq uint64, kind FrameKind, payload []byte, base *[32]byte) error {
	return w.WriteFrame(&Frame{Version: Version, SID: sid, Seq: seq, Kind: kind, Payload: payload, Base: base})
}

// WriteText writes an encoded message. base, when set, is the hash of the
// events frame the message's §[n] and §<n> tokens refer to.
func (w *Writer) WriteText(sid, seq uint64, payload []byte, base *[32]byte) error {
	return w.write(sid, seq, KindText, payload, base)
}

// WriteEvents writes the JSON event tables for the next text frame.
func (w *Writer) WriteEvents(sid, seq uint64, payload []byte) error {
	return w.write(sid, seq, KindEvents, payload, nil)
}

// WriteAck writes an empty acknowledgement.
func (w *Writer) WriteAck(sid, seq uint64) error {
	return w.write(sid, seq, KindAck, nil, nil)
}

// WriteErr reports a failure on stream sid.
func (w *Writer) WriteErr(sid, seq uint64, msg string) error {
	return w.write(sid, seq, KindErr, []byte(msg), nil)
}
