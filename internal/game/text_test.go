package game

import (
	"strings"
	"testing"
)

func TestWrapTextRespectsWidth(t *testing.T) {
	text := "Raised planter beds fill a reclaimed parking lot. A tool shed leans in the corner, half swallowed by squash vines."
	wrapped := WrapText(text, 30)
	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 30 {
			t.Fatalf("line %q exceeds width 30", line)
		}
	}
	if strings.Join(strings.Fields(wrapped), " ") != text {
		t.Fatalf("wrapping altered the words:\n%s", wrapped)
	}
}

func TestWrapTextPreservesParagraphs(t *testing.T) {
	wrapped := WrapText("first paragraph\n\nsecond paragraph", 40)
	if wrapped != "first paragraph\n\nsecond paragraph" {
		t.Fatalf("WrapText = %q", wrapped)
	}
}

func TestWrapTextNarrowFloor(t *testing.T) {
	wrapped := WrapText("one two three four five six seven eight", 5)
	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 20 {
			t.Fatalf("line %q exceeds the floor width", line)
		}
	}
}

func TestWrapTextHardSplitsLongWords(t *testing.T) {
	word := strings.Repeat("x", 50)
	wrapped := WrapText(word, 20)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Fatalf("line %q exceeds width 20", line)
		}
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := WrapText("unchanged text", 0); got != "unchanged text" {
		t.Fatalf("WrapText = %q", got)
	}
}

func TestTrim(t *testing.T) {
	if got := Trim("  go north \r\n"); got != "go north" {
		t.Fatalf("Trim = %q", got)
	}
	if got := Trim("\r"); got != "" {
		t.Fatalf("Trim = %q, want empty", got)
	}
}
