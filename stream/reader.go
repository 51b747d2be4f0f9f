package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader decodes transcript frames from an io.Reader.
type Reader struct {
	r          *bufio.Reader
	maxPayload int
	verifyCRC  bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxPayload caps the len field a frame may declare.
func WithMaxPayload(max int) ReaderOption {
	return func(r *Reader) { r.maxPayload = max }
}

// WithoutCRCVerification accepts frames whose crc field does not match.
func WithoutCRCVerification() ReaderOption {
	return func(r *Reader) { r.verifyCRC = false }
}

// NewReader returns a Reader that rejects payloads over MaxPayloadSize and
// verifies crc fields.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	fr := &Reader{r: bufio.NewReader(r), maxPayload: MaxPayloadSize, verifyCRC: true}
	for _, opt := range opts {
		opt(fr)
	}
	return fr
}

// Next returns the next frame, or io.EOF once the input is exhausted
// between frames.
func (r *Reader) Next() (*Frame, error) {
	line, err := r.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("stream: read header: %w", err)
	}

	f, n, err := parseFrameLine(line)
	if err != nil {
		return nil, err
	}
	if n > r.maxPayload {
		return nil, &ParseError{Reason: fmt.Sprintf("len %d exceeds limit %d", n, r.maxPayload), Offset: -1}
	}
	if err := r.readPayload(f, n); err != nil {
		return nil, err
	}

	if r.verifyCRC && f.CRC != nil {
		if got := ComputeCRC(f.Payload); got != *f.CRC {
			return nil, &CRCMismatchError{Expected: *f.CRC, Got: got}
		}
	}
	return f, nil
}

// readPayload fills f.Payload with n bytes and consumes the separator. The
// last frame of a transcript may end without one.
func (r *Reader) readPayload(f *Frame, n int) error {
	if n > 0 {
		f.Payload = make([]byte, n)
		if _, err := io.ReadFull(r.r, f.Payload); err != nil {
			return fmt.Errorf("stream: read payload: %w", err)
		}
	}
	sep, err := r.r.ReadByte()
	if err == nil && sep != '\n' {
		return r.r.UnreadByte()
	}
	return nil
}

// ReadAll collects frames until io.EOF.
func (r *Reader) ReadAll() ([]*Frame, error) {
	var frames []*Frame
	for {
		f, err := r.Next()
		switch {
		case errors.Is(err, io.EOF):
			return frames, nil
		case err != nil:
			return frames, err
		}
		frames = append(frames, f)
	}
}

// frameFields decodes the value of each known header key into f. Unknown
// keys are skipped so newer writers stay readable.
var frameFields = map[string]func(f *Frame, n *int, val string) error{
	"v": func(f *Frame, _ *int, val string) error {
		if val != strconv.Itoa(int(Version)) {
			return fmt.Errorf("unsupported version %q", val)
		}
		f.Version = Version
		return nil
	},
	"sid": func(f *Frame, _ *int, val string) (err error) {
		f.SID, err = strconv.ParseUint(val, 10, 64)
		return err
	},
	"seq": func(f *Frame, _ *int, val string) (err error) {
		f.Seq, err = strconv.ParseUint(val, 10, 64)
		return err
	},
	"kind": func(f *Frame, _ *int, val string) error {
		k, ok := ParseKind(val)
		if !ok {
			return fmt.Errorf("unknown kind %q", val)
		}
		f.Kind = k
		return nil
	},
	"len": func(_ *Frame, n *int, val string) error {
		l, err := strconv.ParseUint(val, 10, 32)
		*n = int(l)
		return err
	},
	"crc": func(f *Frame, _ *int, val string) error {
		val = strings.TrimPrefix(val, "crc32:")
		if len(val) != 8 {
			return fmt.Errorf("crc %q is not 8 hex digits", val)
		}
		v, err := strconv.ParseUint(val, 16, 32)
		if err != nil {
			return err
		}
		crc := uint32(v)
		f.CRC = &crc
		return nil
	},
	"base": func(f *Frame, _ *int, val string) error {
		h, ok := HexToHash(strings.TrimPrefix(val, "sha256:"))
		if !ok {
			return fmt.Errorf("base %q is not a sha256 hex digest", val)
		}
		f.Base = &h
		return nil
	},
	"final": func(f *Frame, _ *int, val string) error {
		f.Final = val == "true" || val == "1"
		return nil
	},
}

// parseFrameLine decodes a header line into a frame and its payload length.
func parseFrameLine(line string) (*Frame, int, error) {
	body, ok := strings.CutPrefix(strings.TrimRight(line, "\r\n"), "@frame{")
	if !ok {
		return nil, 0, &ParseError{Reason: "expected @frame{", Offset: 0}
	}
	body, ok = strings.CutSuffix(body, "}")
	if !ok {
		return nil, 0, &ParseError{Reason: "missing closing }", Offset: len(line)}
	}

	f := &Frame{Version: Version}
	n := 0
	for _, field := range strings.Fields(body) {
		key, val, _ := strings.Cut(field, "=")
		decode, known := frameFields[key]
		if !known {
			continue
		}
		if err := decode(f, &n, val); err != nil {
			return nil, 0, &ParseError{Reason: key + ": " + err.Error(), Offset: -1}
		}
	}
	return f, n, nil
}
