package game

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// debugAttemptLimit caps failed unlock attempts before the gate locks for
// the rest of the process lifetime.
const debugAttemptLimit = 5

// ErrDebugDenied is returned when the wizard password does not match.
var ErrDebugDenied = errors.New("incorrect wizard password")

// ErrDebugLocked is returned once too many failed attempts have been made.
var ErrDebugLocked = errors.New("debug gate is locked")

// DebugGate guards the runtime debug toggle behind a bcrypt-hashed wizard
// password.
type DebugGate struct {
	mu       sync.Mutex
	hash     []byte
	failures int
}

// NewDebugGate constructs a gate for the given wizard password.
func NewDebugGate(password string) (*DebugGate, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return nil, errors.New("wizard password cannot be blank")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &DebugGate{hash: hashed}, nil
}

// Unlock verifies the password. Failures accumulate; after the attempt limit
// every call returns ErrDebugLocked, even with the right password.
func (g *DebugGate) Unlock(password string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failures >= debugAttemptLimit {
		return ErrDebugLocked
	}
	if bcrypt.CompareHashAndPassword(g.hash, []byte(strings.TrimSpace(password))) != nil {
		g.failures++
		if g.failures >= debugAttemptLimit {
			return ErrDebugLocked
		}
		return ErrDebugDenied
	}
	g.failures = 0
	return nil
}
