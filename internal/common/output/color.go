package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Upgrade classes
	Changed = color.New(color.FgYellow)
	Rebuilt = color.New(color.FgCyan)

	// Message colors
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header  = color.New(color.FgWhite, color.Bold)
	Package = color.New(color.FgBlue, color.Bold)
)

// Class labels printed next to each package
const (
	ClassChanged = "upgraded"
	ClassRebuilt = "rebuilt"
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// ClassLabel returns the label for a rebuilt or changed package
func ClassLabel(rebuilt bool) string {
	if rebuilt {
		return ClassRebuilt
	}
	return ClassChanged
}

// ClassColor returns the color for a rebuilt or changed package
func ClassColor(rebuilt bool) *color.Color {
	if rebuilt {
		return Rebuilt
	}
	return Changed
}

// FormatClass formats the class label with its color, padded for alignment
func FormatClass(rebuilt bool) string {
	return ClassColor(rebuilt).Sprintf("[%-8s]", ClassLabel(rebuilt))
}

// FormatUpgrade formats "name before -> after" with the name highlighted
func FormatUpgrade(name, before, after string) string {
	return Package.Sprint(name) + " " + Dim.Sprint(before) + " -> " + after
}

// PrintWarning prints a warning message to w
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	Warning.Fprintf(w, "⚠ "+format+"\n", args...)
}

// PrintErrorDetail prints one indented error line under a warning
func PrintErrorDetail(w io.Writer, msg string) {
	Error.Fprintf(w, "  ✗ %s\n", msg)
}

// Heading returns a bold section title followed by an underline
func Heading(title string) string {
	return fmt.Sprintf("%s\n%s", Header.Sprint(title), Dim.Sprint(strings.Repeat("-", len(title))))
}
