package styledtext

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Neumenon/stylecode/chatfmt"
	"github.com/Neumenon/stylecode/style"
)

// ParseError describes a malformed control token.
type ParseError struct {
	Message string
	Offset  int // byte offset of the escape marker
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// ParseOptions configures the decoder.
type ParseOptions struct {
	// Events resolves §[n] and §<n> tokens. The decoded text gets a copy.
	Events *style.EventTables

	// Strict makes the first malformed token an error instead of a warning.
	Strict bool

	// Logger receives a debug record per warning. Nil discards.
	Logger *slog.Logger
}

// ParseResult holds the decoded text and any tolerated problems.
type ParseResult struct {
	Text     *StyledText
	Warnings []ParseError
}

// Parse decodes a control string in tolerant mode, without event tables.
func Parse(input string) (*StyledText, error) {
	res, err := ParseWithOptions(input, ParseOptions{})
	if err != nil {
		return nil, err
	}
	return res.Text, nil
}

// ParseWithOptions decodes a control string produced by StyledText.String.
func ParseWithOptions(input string, opts ParseOptions) (*ParseResult, error) {
	p := &parser{
		input:  input,
		opts:   opts,
		text:   withEvents(opts.Events),
		logger: opts.Logger,
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &ParseResult{Text: p.text, Warnings: p.warnings}, nil
}

type parser struct {
	input    string
	opts     ParseOptions
	text     *StyledText
	cur      style.Style
	buf      strings.Builder
	warnings []ParseError
	logger   *slog.Logger
}

func (p *parser) run() error {
	i := 0
	for i < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[i:])
		if r != chatfmt.Prefix {
			p.buf.WriteString(p.input[i : i+size])
			i += size
			continue
		}

		n, apply, msg := p.token(p.input[i+size:])
		if msg != "" {
			if err := p.warn(msg, i); err != nil {
				return err
			}
			p.buf.WriteString(chatfmt.PrefixString)
			i += size
			continue
		}

		p.flush()
		p.cur = apply(p.cur)
		i += size + n
	}
	p.flush()
	return nil
}

// token decodes the token following an escape marker. It returns the number
// of bytes consumed and the style change, or a message describing why the
// token is malformed.
func (p *parser) token(rest string) (int, func(style.Style) style.Style, string) {
	if rest == "" {
		return 0, nil, "dangling escape marker"
	}

	switch rest[0] {
	case '#':
		if len(rest) < 7 {
			return 0, nil, "short hex color"
		}
		c, err := chatfmt.HexDigits(rest[1:7])
		if err != nil {
			return 0, nil, fmt.Sprintf("invalid hex color %q", rest[1:7])
		}
		return 7, colorToken(c), ""

	case '[':
		idx, n, msg := p.index(rest, ']')
		if msg != "" {
			return 0, nil, msg
		}
		e, err := p.opts.Events.Click.Get(idx)
		if err != nil {
			return 0, nil, fmt.Sprintf("click event: %v", err)
		}
		return n, func(s style.Style) style.Style { return s.With(style.Click(&e)) }, ""

	case '<':
		idx, n, msg := p.index(rest, '>')
		if msg != "" {
			return 0, nil, msg
		}
		e, err := p.opts.Events.Hover.Get(idx)
		if err != nil {
			return 0, nil, fmt.Sprintf("hover event: %v", err)
		}
		return n, func(s style.Style) style.Style { return s.With(style.Hover(&e)) }, ""
	}

	r, size := utf8.DecodeRuneInString(rest)
	f, ok := chatfmt.ByCode(r)
	if !ok {
		return 0, nil, fmt.Sprintf("unknown formatting code %q", r)
	}
	switch {
	case f == chatfmt.Reset:
		return size, func(style.Style) style.Style { return style.Empty }, ""
	case f.IsColor():
		return size, colorToken(f.Color()), ""
	default:
		return size, func(s style.Style) style.Style { return s.With(style.Toggle(f, true)) }, ""
	}
}

// colorToken starts over from a clean slate in colour c, the way the
// legacy renderer treats every colour code.
func colorToken(c chatfmt.Color) func(style.Style) style.Style {
	return func(style.Style) style.Style { return style.New(style.Color(c)) }
}

// index reads "[digits" + closer and returns the index and bytes consumed.
func (p *parser) index(rest string, closer byte) (int, int, string) {
	end := strings.IndexByte(rest, closer)
	if end < 2 {
		return 0, 0, fmt.Sprintf("unterminated %c%c reference", rest[0], closer)
	}
	idx, err := strconv.Atoi(rest[1:end])
	if err != nil {
		return 0, 0, fmt.Sprintf("invalid reference index %q", rest[1:end])
	}
	if p.opts.Events == nil {
		return 0, 0, "event reference without event tables"
	}
	return idx, end + 1, ""
}

func (p *parser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.text.Append(p.buf.String(), p.cur)
	p.buf.Reset()
}

func (p *parser) warn(msg string, offset int) error {
	pe := ParseError{Message: msg, Offset: offset}
	if p.opts.Strict {
		return &pe
	}
	p.warnings = append(p.warnings, pe)
	p.logger.Debug("styledtext: tolerated malformed token", "offset", offset, "reason", msg)
	return nil
}
