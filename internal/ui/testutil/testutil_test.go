package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	for _, k := range []string{"q", "G", "enter", "esc", " ", "shift+left", "ctrl+d", "pgdown", "?", "["} {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[1mab\x1b[0m日本"); got != 6 {
		t.Errorf("MeasureWidth = %d, want 6", got)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[31msecond match\x1b[0m\nthird match"

	if got := FindLine(out, "match"); got != "second match" {
		t.Errorf("FindLine = %q", got)
	}
	if FindLine(out, "missing") != "" {
		t.Error("FindLine should return empty for no match")
	}
	if !ContainsLine(out, "third") {
		t.Error("ContainsLine should find third")
	}
	if got := LineIndex(out, "third"); got != 2 {
		t.Errorf("LineIndex = %d, want 2", got)
	}
	if got := LineIndex(out, "missing"); got != -1 {
		t.Errorf("LineIndex = %d, want -1", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines = %q", got)
	}
	if len(SplitLines("")) != 0 {
		t.Error("empty output should have no lines")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if ExecuteCmd(nil) != nil {
		t.Error("nil command should produce nil message")
	}
}
