package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Neumenon/stylecode/style"
	"github.com/Neumenon/stylecode/styledtext"
)

// encode: JSON component -> control string
func (a *app) encode(args []string) error {
	fs := a.newFlagSet("encode")
	modeName := fs.String("mode", a.cfg.Mode, "encoding mode: none, default or full")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mode, err := style.ParseMode(*modeName)
	if err != nil {
		return err
	}

	data, err := a.readInput(fs.Args())
	if err != nil {
		return err
	}
	t, err := styledtext.ParseComponentJSON(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, t.String(mode))
	a.logger.Debug("encoded", "mode", mode, "parts", t.Len(), "width", t.Width())

	if mode == style.ModeFull {
		tables, err := json.MarshalIndent(t.Events(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode events: %w", err)
		}
		fmt.Fprintln(a.stderr, string(tables))
	}
	return nil
}

// decode: control string -> JSON component
func (a *app) decode(args []string) error {
	fs := a.newFlagSet("decode")
	strict := fs.Bool("strict", a.cfg.Parse.Strict, "fail on malformed tokens")
	eventsPath := fs.String("events", "", "JSON event tables for §[n] and §<n> tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := a.parseInput(fs.Args(), *strict, *eventsPath)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(t.ToComponent(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode component: %w", err)
	}
	fmt.Fprintln(a.stdout, string(out))
	return nil
}

// parseInput decodes the control string named by args, resolving event
// tokens against the tables in eventsPath when it is set.
func (a *app) parseInput(args []string, strict bool, eventsPath string) (*styledtext.StyledText, error) {
	input, err := a.controlString(args)
	if err != nil {
		return nil, err
	}

	opts := styledtext.ParseOptions{Strict: strict, Logger: a.logger}
	if eventsPath != "" {
		data, err := os.ReadFile(eventsPath)
		if err != nil {
			return nil, fmt.Errorf("read events: %w", err)
		}
		opts.Events = &style.EventTables{}
		if err := json.Unmarshal(data, opts.Events); err != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
	}

	res, err := styledtext.ParseWithOptions(input, opts)
	if err != nil {
		return nil, err
	}
	if len(res.Warnings) > 0 {
		a.logger.Warn("tolerated malformed tokens", "count", len(res.Warnings), "first", res.Warnings[0].Error())
	}
	return res.Text, nil
}
