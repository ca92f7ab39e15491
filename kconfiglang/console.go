package kconfiglang

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console writes the human-readable messages of the switcher. It is not meant to be
// machine-parsed. Messages are colored only when the output is a terminal.
type Console struct {
	out     io.Writer
	styled  bool
	success lipgloss.Style
	failure lipgloss.Style
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	con := &Console{out: out}
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		r := lipgloss.NewRenderer(f)
		con.styled = true
		con.success = r.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
		con.failure = r.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	}
	return con
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints a confirmation line.
func (con *Console) Success(format string, a ...any) error {
	return con.println(con.success, "✅ "+fmt.Sprintf(format, a...))
}

// Failure prints a failure line.
func (con *Console) Failure(format string, a ...any) error {
	return con.println(con.failure, "❌ "+fmt.Sprintf(format, a...))
}

func (con *Console) println(style lipgloss.Style, line string) error {
	if con.styled {
		line = style.Render(line)
	}
	_, err := fmt.Fprintln(con.out, line)
	return err
}
