package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "multiple spaces",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "tabs and newlines",
			input: "hello\t\nworld",
			want:  "hello world",
		},
		{
			name:  "leading and trailing",
			input: "  hello  ",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31mhello\x1b[0m"); got != 5 {
		t.Errorf("MeasureWidth = %d, want 5", got)
	}
	if got := MeasureWidth("日本"); got != 4 {
		t.Errorf("MeasureWidth(wide) = %d, want 4", got)
	}
}

func TestContainsLine(t *testing.T) {
	output := "line one\nline two\nline three"

	if !ContainsLine(output, "two") {
		t.Error("should find 'two' in output")
	}
	if ContainsLine(output, "four") {
		t.Error("should not find 'four' in output")
	}
}

func TestFindLine(t *testing.T) {
	output := "alpha\nbeta gamma\ndelta"

	if got := FindLine(output, "gamma"); got != "beta gamma" {
		t.Errorf("FindLine = %q, want %q", got, "beta gamma")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("one\ntwo\n\n  \n")
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("SplitLines = %#v", lines)
	}
}
