package game

import (
	"fmt"
	"sync"
)

// Console collects output lines for the player. The turn loop drains it
// after every command; commands and world collaborators only push. This
// replaces a per-connection writer goroutine because the engine is
// single-session and turn-synchronous.
type Console struct {
	mu    sync.Mutex
	lines []string
}

// Push appends one line of output.
func (c *Console) Push(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

// Pushf appends one formatted line of output.
func (c *Console) Pushf(format string, args ...any) {
	c.Push(fmt.Sprintf(format, args...))
}

// Drain returns the pending lines and empties the buffer.
func (c *Console) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.lines
	c.lines = nil
	return out
}

// Prompt renders the standard player prompt, with an unread badge when the
// inbox has pending notifications.
func Prompt(unread int) string {
	if unread > 0 {
		return Ansi(Style(fmt.Sprintf("[%d unread] > ", unread), AnsiBold, AnsiYellow))
	}
	return Ansi(Style("> ", AnsiBold, AnsiYellow))
}
