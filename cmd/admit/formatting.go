package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	allowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	denyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// verdictLine formats one ALLOW/DENY verdict. Styling is skipped when
// stdout is not a terminal so piped output stays parseable.
func verdictLine(value string, admitted bool) string {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if admitted {
		if tty {
			return allowStyle.Render("ALLOW") + " " + value
		}
		return "ALLOW " + value
	}
	if tty {
		return denyStyle.Render("DENY") + "  " + value
	}
	return "DENY  " + value
}
