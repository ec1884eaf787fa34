package game

import "sync"

// TurnClock is the process-wide turn counter driving cooldown windows. The
// game loop advances it exactly once per turn, before any routing decisions
// that should observe the new turn number; no other component mutates it.
type TurnClock struct {
	mu   sync.Mutex
	turn int
}

// Advance increments the counter and returns the new turn number.
func (c *TurnClock) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turn++
	return c.turn
}

// Current returns the current turn number.
func (c *TurnClock) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turn
}
