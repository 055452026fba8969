package output

import (
	"bytes"
	"strings"
	"testing"

	"simpletasks/internal/config"
	"simpletasks/internal/store"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name     string
		entry    store.Entry
		expected string
	}{
		{"open", store.Entry{Title: "A", Task: store.Task{Description: "apple"}}, "A: apple\n"},
		{"completed", store.Entry{Title: "B", Task: store.Task{Description: "banana", Completed: true}}, "[COMPLETED] B: banana\n"},
		{"newlines flattened", store.Entry{Title: "multi\nline", Task: store.Task{Description: "a\r\nb"}}, "multi line: a  b\n"},
	}
	for _, mode := range []string{config.ColorAuto, config.ColorNever} {
		for _, tt := range tests {
			t.Run(mode+"/"+tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				FormatTask(&buf, NewStyles(&buf, mode), tt.entry)
				if buf.String() != tt.expected {
					t.Errorf("expected %q, got %q", tt.expected, buf.String())
				}
			})
		}
	}
}

func TestFormatTaskAlwaysColors(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, NewStyles(&buf, config.ColorAlways), store.Entry{Title: "B", Task: store.Task{Description: "banana", Completed: true}})

	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escape in %q", got)
	}
	if !strings.Contains(got, CompletedMarker) || !strings.HasSuffix(got, " B: banana\n") {
		t.Errorf("unexpected line %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEmpty(&buf)
	if buf.String() != "No tasks to display.\n" {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}
