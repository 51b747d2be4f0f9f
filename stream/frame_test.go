package stream

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Headers(t *testing.T) {
	eventsJSON := []byte(`{"click":[],"hover":[]}`)
	base := EventsHash(eventsJSON)

	tests := []struct {
		name  string
		crc   bool
		write func(w *Writer) error
		want  string
	}{
		{
			name:  "text",
			write: func(w *Writer) error { return w.WriteText(0, 0, []byte("§chi"), nil) },
			want:  "@frame{v=1 sid=0 seq=0 kind=text len=5}\n§chi\n",
		},
		{
			name:  "ack_has_no_payload",
			write: func(w *Writer) error { return w.WriteAck(1, 42) },
			want:  "@frame{v=1 sid=1 seq=42 kind=ack len=0}\n\n",
		},
		{
			name:  "text_pinned_to_events",
			write: func(w *Writer) error { return w.WriteText(2, 3, []byte("§[1]x"), &base) },
			want:  "@frame{v=1 sid=2 seq=3 kind=text len=6 base=sha256:" + HashToHex(base) + "}\n§[1]x\n",
		},
		{
			name:  "err_with_crc",
			crc:   true,
			write: func(w *Writer) error { return w.WriteErr(4, 5, "kicked") },
			want:  fmt.Sprintf("@frame{v=1 sid=4 seq=5 kind=err len=6 crc=%08x}\nkicked\n", ComputeCRC([]byte("kicked"))),
		},
		{
			name:  "empty_frame_skips_crc",
			crc:   true,
			write: func(w *Writer) error { return w.WriteAck(4, 6) },
			want:  "@frame{v=1 sid=4 seq=6 kind=ack len=0}\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if tt.crc {
				w = NewWriterWithCRC(&buf)
			}
			require.NoError(t, tt.write(w))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReader_ChatLine(t *testing.T) {
	f, err := NewReader(strings.NewReader("@frame{v=1 sid=3 seq=7 kind=text len=5}\n§chi\n")).Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), f.SID)
	assert.Equal(t, uint64(7), f.Seq)
	assert.Equal(t, KindText, f.Kind)
	assert.Equal(t, "§chi", string(f.Payload))
	assert.False(t, f.HasCRC())
	assert.False(t, f.HasBase())
}

func TestReader_MultiLineMessage(t *testing.T) {
	msg := "§6[Guild]\n§lmotd§r\n"
	input := fmt.Sprintf("@frame{v=1 sid=1 seq=1 kind=text len=%d}\n%s\n", len(msg), msg)

	f, err := NewReader(strings.NewReader(input)).Next()
	require.NoError(t, err)
	assert.Equal(t, msg, string(f.Payload))
}

func TestReader_LastFrameWithoutSeparator(t *testing.T) {
	frames, err := NewReader(strings.NewReader("@frame{v=1 kind=ack len=0}\n\n@frame{v=1 kind=err len=3}\nbye")).ReadAll()
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "bye", string(frames[1].Payload))
}

func TestReader_CRC(t *testing.T) {
	tampered := "@frame{v=1 sid=1 seq=5 kind=text len=5 crc=deadbeef}\nhello\n"

	_, err := NewReader(strings.NewReader(tampered)).Next()
	var mismatch *CRCMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint32(0xdeadbeef), mismatch.Expected)
	assert.Equal(t, ComputeCRC([]byte("hello")), mismatch.Got)

	f, err := NewReader(strings.NewReader(tampered), WithoutCRCVerification()).Next()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(f.Payload))
}

func TestReader_MalformedHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not_a_frame", "hello there\n"},
		{"unclosed", "@frame{v=1 kind=text len=0\n\n"},
		{"unknown_kind", "@frame{v=1 kind=doc len=0}\n\n"},
		{"future_version", "@frame{v=2 kind=text len=0}\n\n"},
		{"len_not_a_number", "@frame{v=1 kind=text len=x}\n\n"},
		{"short_crc", "@frame{v=1 kind=text len=0 crc=12}\n\n"},
		{"short_base", "@frame{v=1 kind=text len=0 base=sha256:abc}\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input)).Next()
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestReader_IgnoresUnknownFields(t *testing.T) {
	f, err := NewReader(strings.NewReader("@frame{v=1 kind=ack len=0 lang=en_us}\n\n")).Next()
	require.NoError(t, err)
	assert.Equal(t, KindAck, f.Kind)
}

func TestReader_PayloadLimit(t *testing.T) {
	r := NewReader(strings.NewReader("@frame{v=1 kind=text len=100}\n"), WithMaxPayload(10))
	_, err := r.Next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "exceeds limit")
}

func TestReader_EOF(t *testing.T) {
	_, err := NewReader(strings.NewReader("")).Next()
	assert.Equal(t, io.EOF, err)
}

func TestFrames_ConversationRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterWithCRC(&buf)
	tables := []byte(`{"click":[{"action":"run_command","value":"/spawn"}],"hover":[]}`)
	base := EventsHash(tables)

	require.NoError(t, w.WriteEvents(1, 1, tables))
	require.NoError(t, w.WriteText(1, 2, []byte("§c§l§[1]spawn"), &base))
	require.NoError(t, w.WriteErr(1, 3, "timed out"))
	require.NoError(t, w.WriteAck(1, 4))

	frames, err := NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, frames, 4)

	for i, want := range []FrameKind{KindEvents, KindText, KindErr, KindAck} {
		assert.Equal(t, want, frames[i].Kind, "frame %d", i)
		assert.Equal(t, uint64(i+1), frames[i].Seq, "frame %d", i)
	}
	require.True(t, frames[1].HasBase())
	assert.Equal(t, base, *frames[1].Base)
	assert.True(t, frames[1].HasCRC())
	assert.False(t, frames[3].HasCRC())
}

func TestParseKind(t *testing.T) {
	for _, k := range []FrameKind{KindText, KindEvents, KindAck, KindErr} {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("doc")
	assert.False(t, ok)
}

func TestHexToHash(t *testing.T) {
	h := EventsHash([]byte(`{"click":[],"hover":[]}`))
	got, ok := HexToHash(HashToHex(h))
	require.True(t, ok)
	assert.Equal(t, h, got)

	_, ok = HexToHash(strings.Repeat("zz", 32))
	assert.False(t, ok)
}
