package game

import (
	"strings"
	"testing"
)

func TestConsolePushAndDrain(t *testing.T) {
	console := &Console{}
	console.Push("first")
	console.Pushf("second %d", 2)

	lines := console.Drain()
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second 2" {
		t.Fatalf("Drain = %v", lines)
	}
	if got := console.Drain(); len(got) != 0 {
		t.Fatalf("second Drain = %v, want empty", got)
	}
}

func TestPromptUnreadBadge(t *testing.T) {
	if got := Prompt(0); strings.Contains(got, "unread") {
		t.Fatalf("Prompt(0) = %q, want no badge", got)
	}
	if got := Prompt(3); !strings.Contains(got, "[3 unread]") {
		t.Fatalf("Prompt(3) = %q", got)
	}
}
