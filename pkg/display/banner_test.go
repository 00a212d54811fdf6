package display

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		leftPad  int
		expected string
	}{
		{
			name:     "centered tool name",
			input:    "Xnatdownload",
			leftPad:  26,
			expected: "# " + strings.Repeat(" ", 26) + "Xnatdownload" + strings.Repeat(" ", 22) + " #",
		},
		{
			name:     "empty row",
			input:    "",
			leftPad:  0,
			expected: "# " + strings.Repeat(" ", 60) + " #",
		},
		{
			name:     "indented hint row",
			input:    "Check the help for examples by running --help",
			leftPad:  4,
			expected: "# " + strings.Repeat(" ", 4) + "Check the help for examples by running --help" + strings.Repeat(" ", 11) + " #",
		},
		{
			name:     "no padding",
			input:    "Usage:",
			leftPad:  0,
			expected: "# Usage:" + strings.Repeat(" ", 54) + " #",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := PadLine(test.input, test.leftPad)
			if result != test.expected {
				t.Errorf("PadLine(%q, %d) = %q, expected %q", test.input, test.leftPad, result, test.expected)
			}
			if got := utf8.RuneCountInString(result); got != Width {
				t.Errorf("PadLine(%q, %d) rendered %d characters, expected %d", test.input, test.leftPad, got, Width)
			}
		})
	}
}

func TestPadLines(t *testing.T) {
	result := PadLines([]string{"first line", "second line"}, 4)
	expected := PadLine("first line", 4) + "\n" + PadLine("second line", 4)
	if result != expected {
		t.Errorf("PadLines() = %q, expected %q", result, expected)
	}

	if got := PadLines(nil, 4); got != "" {
		t.Errorf("PadLines(nil) = %q, expected empty string", got)
	}
}

func TestPadLineTo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		leftPad  int
		format   string
		symbol   string
		expected string
	}{
		{
			name:     "completion row",
			input:    "Xnatdownload",
			width:    58,
			leftPad:  23,
			format:   "%s DONE %s",
			symbol:   "=",
			expected: strings.Repeat("=", 22) + " Xnatdownload DONE " + strings.Repeat("=", 23),
		},
		{
			name:     "non-space symbol with zero padding keeps one space",
			input:    "x",
			width:    5,
			leftPad:  0,
			format:   "%s%s",
			symbol:   "=",
			expected: " x===",
		},
		{
			name:     "negative padding clamps to zero",
			input:    "abc",
			width:    10,
			leftPad:  -5,
			format:   "%s%s",
			symbol:   " ",
			expected: "abc" + strings.Repeat(" ", 7),
		},
		{
			name:     "text wider than width gets no fill",
			input:    strings.Repeat("y", 70),
			width:    58,
			leftPad:  0,
			format:   "%s DONE %s",
			symbol:   "=",
			expected: " " + strings.Repeat("y", 70) + " DONE ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := PadLineTo(test.input, test.width, test.leftPad, test.format, test.symbol)
			if result != test.expected {
				t.Errorf("PadLineTo(%q, %d, %d, %q, %q) = %q, expected %q",
					test.input, test.width, test.leftPad, test.format, test.symbol, result, test.expected)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Xnatsetup", []string{"Set up XNAT host and credentials."})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 14 {
		t.Fatalf("expected 14 segments, got %d:\n%s", len(lines), buf.String())
	}

	borderRow := strings.Repeat("#", Width)
	if lines[0] != borderRow || lines[10] != borderRow {
		t.Error("expected full-width border rows at top and bottom")
	}

	// Name padding is computed against the frame width, not the body width
	if idx := strings.Index(lines[1], "Xnatsetup"); idx != 2+27 {
		t.Errorf("tool name starts at column %d, expected %d", idx, 2+27)
	}

	if lines[2] != "# "+strings.Repeat(" ", 60)+" #" {
		t.Errorf("expected empty framed row, got %q", lines[2])
	}

	if !strings.Contains(lines[3], "MASI Lab") {
		t.Errorf("expected authorship row, got %q", lines[3])
	}

	if !strings.HasPrefix(lines[6], "# Usage:") {
		t.Errorf("expected usage header row, got %q", lines[6])
	}

	if !strings.HasPrefix(lines[7], "# "+strings.Repeat(" ", 4)+"Set up XNAT") {
		t.Errorf("expected indented purpose row, got %q", lines[7])
	}

	if !strings.Contains(lines[9], "--help") {
		t.Errorf("expected help hint row, got %q", lines[9])
	}

	if lines[11] != "" {
		t.Errorf("expected blank line after frame, got %q", lines[11])
	}

	if lines[12] != strings.Repeat("-", Width) {
		t.Errorf("expected dashed rule, got %q", lines[12])
	}

	for _, i := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12} {
		if got := utf8.RuneCountInString(lines[i]); got != Width {
			t.Errorf("line %d is %d characters wide, expected %d: %q", i, got, Width, lines[i])
		}
	}
}

func TestBanner_MultiLinePurpose(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Xnatreport", []string{
		"Generate a report from XNAT.",
		"One row per session.",
	})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 segments, got %d", len(lines))
	}

	if !strings.HasPrefix(lines[7], "#     Generate a report") {
		t.Errorf("expected first purpose row, got %q", lines[7])
	}
	if !strings.HasPrefix(lines[8], "#     One row per session.") {
		t.Errorf("expected second purpose row, got %q", lines[8])
	}
}

func TestSeparator(t *testing.T) {
	var buf bytes.Buffer
	Separator(&buf, "=")
	if buf.String() != strings.Repeat("=", Width)+"\n" {
		t.Errorf("Separator(=) = %q", buf.String())
	}

	buf.Reset()
	Separator(&buf, "-")
	if buf.String() != strings.Repeat("-", Width)+"\n" {
		t.Errorf("Separator(-) = %q", buf.String())
	}
}

func TestEnd(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		expected string
	}{
		{
			name:     "even length name",
			tool:     "Xnatdownload",
			expected: strings.Repeat("=", 22) + " Xnatdownload DONE " + strings.Repeat("=", 23) + "\n\n\n",
		},
		{
			name:     "odd length name",
			tool:     "Xnatcheck",
			expected: strings.Repeat("=", 23) + " Xnatcheck DONE " + strings.Repeat("=", 25) + "\n\n\n",
		},
		{
			name:     "name wider than the banner",
			tool:     strings.Repeat("x", 60),
			expected: " " + strings.Repeat("x", 60) + " DONE \n\n\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			End(&buf, test.tool)
			if buf.String() != test.expected {
				t.Errorf("End(%q) = %q, expected %q", test.tool, buf.String(), test.expected)
			}
		})
	}
}

func TestTree(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		subject  string
		session  string
		expected string
	}{
		{
			name:     "full tree",
			project:  "proj01",
			subject:  "subj042",
			session:  "sess-baseline",
			expected: "Project: proj01\n  +Subject: subj042\n    *Session: sess-baseline\n",
		},
		{
			name:     "project only",
			project:  "proj01",
			expected: "Project: proj01\n",
		},
		{
			name:     "no session",
			project:  "proj01",
			subject:  "subj042",
			expected: "Project: proj01\n  +Subject: subj042\n",
		},
		{
			name:     "session without subject is suppressed",
			project:  "proj01",
			session:  "sess-baseline",
			expected: "Project: proj01\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			Tree(&buf, test.project, test.subject, test.session)
			if buf.String() != test.expected {
				t.Errorf("Tree() = %q, expected %q", buf.String(), test.expected)
			}
		})
	}
}
