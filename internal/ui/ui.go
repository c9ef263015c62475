package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output destinations, replaceable in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// FormatError returns a styled error: a title line, then optional detail
// and hint lines indented below it.
func FormatError(title, detail, suggestion string) string {
	lines := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		lines += "  " + detail + "\n"
	}
	if suggestion != "" {
		lines += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return lines
}

// PrintError writes a FormatError message to Stderr.
func PrintError(title, detail, suggestion string) {
	fmt.Fprint(Stderr, FormatError(title, detail, suggestion))
}

// Warn reports a non-fatal problem on Stderr.
func Warn(msg string) {
	fmt.Fprintln(Stderr, warnStyle.Render("Warning: "+msg))
}

// MapWritten lists a written map file.
func MapWritten(path string) {
	fmt.Fprintf(Stdout, "  %s %s\n", successStyle.Render("OK "), path)
}

// Notice prints a dim informational line.
func Notice(msg string) {
	fmt.Fprintln(Stdout, dimStyle.Render(msg))
}

// Success prints the final summary line of a command.
func Success(msg string) {
	fmt.Fprintln(Stdout, successStyle.Render(msg))
}

func Bold(s string) string { return boldStyle.Render(s) }

func Hint(s string) string { return hintStyle.Render(s) }

// ValidationOK marks a checked setting as fine.
func ValidationOK(field, detail string) {
	fmt.Fprintf(Stdout, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr marks a checked setting as broken, with an optional fix.
func ValidationErr(field, message, suggestion string) {
	fmt.Fprintf(Stdout, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(Stdout, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
