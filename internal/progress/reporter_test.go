package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Checking charts"}

	r.Start(2)
	r.Update(1, "cpi_bubble_map.json")
	r.Update(2, "cpi_vs_gst_line_bar.json")
	r.Finish()

	want := []string{
		"Checking charts: 2 artifact(s)",
		"[1/2] cpi_bubble_map.json",
		"[2/2] cpi_vs_gst_line_bar.json",
		"Checking charts: done",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewReporter_CI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporter_Terminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter("x").(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestTerminalReporter_NoStart(t *testing.T) {
	// Update and Finish before Start must not panic.
	r := &TerminalReporter{}
	r.Update(1, "x")
	r.Finish()
}
