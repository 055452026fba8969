// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

const (
	// CompletedMarker prefixes completed tasks in list output.
	CompletedMarker = "[COMPLETED]"

	// EmptyList is printed when a list query matches nothing.
	EmptyList = "No tasks to display."
)

// colorMuted is the ayu dark muted gray.
var colorMuted = lipgloss.Color("#6c7680")

// Styles renders decorations for a single writer.
type Styles struct {
	completed lipgloss.Style
}

// NewStyles builds styles for w. mode is one of the config color modes; in
// auto mode the color profile is detected
// from w, so buffers and pipes get plain text.
func NewStyles(w io.Writer, mode string) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{completed: r.NewStyle().Foreground(colorMuted)}
}

// FormatTask writes one list line.
// Format: "[COMPLETED] {TITLE}: {DESCRIPTION}\n" or "{TITLE}: {DESCRIPTION}\n"
func FormatTask(w io.Writer, st Styles, e store.Entry) {
	title := normalizeLine(e.Title)
	desc := normalizeLine(e.Task.Description)
	if e.Task.Completed {
		fmt.Fprintf(w, "%s %s: %s\n", st.completed.Render(CompletedMarker), title, desc)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", title, desc)
}

// FormatEmpty writes the empty-result message.
func FormatEmpty(w io.Writer) {
	fmt.Fprintln(w, EmptyList)
}

// normalizeLine keeps one task on one line.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
