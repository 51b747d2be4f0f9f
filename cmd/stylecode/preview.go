package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Neumenon/stylecode/style"
	"github.com/Neumenon/stylecode/styledtext"
)

// preview: control string -> terminal styled output
func (a *app) preview(args []string) error {
	fs := a.newFlagSet("preview")
	width := fs.Int("width", 0, "truncate to this many columns (0 = no limit)")
	strict := fs.Bool("strict", a.cfg.Parse.Strict, "fail on malformed tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := a.parseInput(fs.Args(), *strict, "")
	if err != nil {
		return err
	}
	if *width > 0 {
		t = t.Truncate(*width, "…")
	}
	fmt.Fprintln(a.stdout, render(t))
	return nil
}

// render draws every part with its lipgloss equivalent. Obfuscated text has
// no terminal counterpart and is shown reversed.
func render(t *styledtext.StyledText) string {
	var sb strings.Builder
	for _, p := range t.Parts() {
		sb.WriteString(lipglossStyle(p.Style).Render(p.Text))
	}
	return sb.String()
}

func lipglossStyle(s style.Style) lipgloss.Style {
	ls := lipgloss.NewStyle().
		Bold(s.Bold()).
		Italic(s.Italic()).
		Underline(s.Underlined()).
		Strikethrough(s.Strikethrough()).
		Reverse(s.Obfuscated())
	if c := s.Color(); !c.IsNone() {
		ls = ls.Foreground(lipgloss.Color(c.Hex()))
	}
	return ls
}
