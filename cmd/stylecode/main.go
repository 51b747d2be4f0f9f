// stylecode - legacy § formatting code CLI tool
//
// Usage:
//
//	stylecode encode [--mode=M] [file]        Encode a JSON component as a control string
//	stylecode decode [--strict] [file]        Decode a control string to a JSON component
//	stylecode preview [--width=N] [file]      Render a control string with terminal styling
//	stylecode transcript write [file]         Frame JSON components (one per line)
//	stylecode transcript read [file]          Decode a framed transcript to JSON lines
//	stylecode version                         Print version info
//
// If no file is given, reads from stdin. Defaults come from stylecode.yaml
// in the working directory or $HOME/.config/stylecode, and from STYLECODE_*
// environment variables; flags override both.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const libVersion = "0.1.0"

// app carries the resolved configuration and the standard streams.
type app struct {
	cfg    *Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := loadConfig(defaultConfigPaths()...)
	if err != nil {
		fatal("load config: %v", err)
	}
	logger, err := newLogger(cfg.Log.Level, os.Stderr)
	if err != nil {
		fatal("%v", err)
	}

	a := &app{cfg: cfg, logger: logger, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fatal("%v", err)
	}
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "encode":
		return a.encode(args)
	case "decode":
		return a.decode(args)
	case "preview":
		return a.preview(args)
	case "transcript":
		if len(args) < 1 {
			return fmt.Errorf("transcript: missing subcommand (write, read)")
		}
		switch args[0] {
		case "write":
			return a.transcriptWrite(args[1:])
		case "read":
			return a.transcriptRead(args[1:])
		default:
			return fmt.Errorf("transcript: unknown subcommand: %s", args[0])
		}
	case "version", "-v", "--version":
		fmt.Fprintf(a.stdout, "stylecode %s\n", libVersion)
		return nil
	case "help", "-h", "--help":
		printUsage(a.stdout)
		return nil
	default:
		printUsage(a.stderr)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `stylecode - legacy § formatting code tool

Usage:
  stylecode encode [--mode=M] [file]        Encode a JSON component as a control string
  stylecode decode [--strict] [file]        Decode a control string to a JSON component
  stylecode preview [--width=N] [file]      Render a control string with terminal styling
  stylecode transcript write [options] [file]
                                            Frame JSON components (one per line)
  stylecode transcript read [file]          Decode a framed transcript to JSON lines
  stylecode version                         Print version info

Modes:
  none       plain text only
  default    colours and toggles (default)
  full       colours, toggles and event references; tables go to stderr

If no file is given, reads from stdin.

Examples:
  echo '{"text":"hi","color":"red","bold":true}' | stylecode encode
  # Output: §c§lhi

  printf '§c§lhi§r plain' | stylecode decode
`)
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// openInput opens the first positional argument, or stdin when there is
// none or it is "-".
func (a *app) openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(a.stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

func (a *app) readInput(args []string) ([]byte, error) {
	r, err := a.openInput(args)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// controlString reads a control string, dropping one trailing newline.
func (a *app) controlString(args []string) (string, error) {
	data, err := a.readInput(args)
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "stylecode: "+format+"\n", args...)
	os.Exit(1)
}
