package main

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/Neumenon/stylecode/stream"
	"github.com/Neumenon/stylecode/styledtext"
)

const maxLine = 1 << 20

// transcriptWrite: JSON components, one per line -> framed transcript
func (a *app) transcriptWrite(args []string) error {
	fs := a.newFlagSet("transcript write")
	sid := fs.Uint64("sid", 1, "stream id")
	withCRC := fs.Bool("crc", a.cfg.Transcript.CRC, "add a CRC to every frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := a.openInput(fs.Args())
	if err != nil {
		return err
	}
	defer r.Close()

	fw := stream.NewWriter(a.stdout)
	if *withCRC {
		fw = stream.NewWriterWithCRC(a.stdout)
	}
	tw := stream.NewTranscriptWriter(fw, *sid)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n := 0
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		t, err := styledtext.ParseComponentJSON(sc.Bytes())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := tw.Write(t); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := tw.Close(); err != nil {
		return err
	}
	a.logger.Info("transcript written", "sid", *sid, "messages", n)
	return nil
}

// transcriptRead: framed transcript -> JSON components, one per line
func (a *app) transcriptRead(args []string) error {
	fs := a.newFlagSet("transcript read")
	strict := fs.Bool("strict", a.cfg.Parse.Strict, "fail on malformed tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := a.openInput(fs.Args())
	if err != nil {
		return err
	}
	defer r.Close()

	tr := stream.NewTranscriptReader(stream.NewReader(r), styledtext.ParseOptions{Strict: *strict, Logger: a.logger})
	msgs, err := tr.ReadAll()
	for _, m := range msgs {
		line, merr := json.Marshal(m.Text.ToComponent())
		if merr != nil {
			return fmt.Errorf("seq %d: %w", m.Seq, merr)
		}
		fmt.Fprintln(a.stdout, string(line))
	}
	if err != nil {
		return err
	}
	a.logger.Info("transcript read", "messages", len(msgs))
	return nil
}
