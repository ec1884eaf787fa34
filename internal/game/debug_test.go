package game

import (
	"errors"
	"testing"
)

func TestDebugGateBlankPassword(t *testing.T) {
	if _, err := NewDebugGate("   "); err == nil {
		t.Fatalf("NewDebugGate accepted a blank password")
	}
}

func TestDebugGateUnlock(t *testing.T) {
	gate, err := NewDebugGate("compost-king")
	if err != nil {
		t.Fatalf("NewDebugGate: %v", err)
	}

	if err := gate.Unlock("petunia"); !errors.Is(err, ErrDebugDenied) {
		t.Fatalf("Unlock(wrong) = %v, want ErrDebugDenied", err)
	}
	if err := gate.Unlock("compost-king"); err != nil {
		t.Fatalf("Unlock(right) = %v", err)
	}
	if err := gate.Unlock("  compost-king  "); err != nil {
		t.Fatalf("Unlock did not trim the password: %v", err)
	}
}

func TestDebugGateLockout(t *testing.T) {
	gate, err := NewDebugGate("compost-king")
	if err != nil {
		t.Fatalf("NewDebugGate: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := gate.Unlock("wrong"); !errors.Is(err, ErrDebugDenied) {
			t.Fatalf("attempt %d = %v, want ErrDebugDenied", i+1, err)
		}
	}
	if err := gate.Unlock("wrong"); !errors.Is(err, ErrDebugLocked) {
		t.Fatalf("attempt 5 = %v, want ErrDebugLocked", err)
	}
	// The lock is permanent, even with the correct password.
	if err := gate.Unlock("compost-king"); !errors.Is(err, ErrDebugLocked) {
		t.Fatalf("post-lock Unlock = %v, want ErrDebugLocked", err)
	}
}

func TestDebugGateSuccessResetsFailures(t *testing.T) {
	gate, err := NewDebugGate("compost-king")
	if err != nil {
		t.Fatalf("NewDebugGate: %v", err)
	}

	for i := 0; i < 4; i++ {
		gate.Unlock("wrong")
	}
	if err := gate.Unlock("compost-king"); err != nil {
		t.Fatalf("Unlock = %v", err)
	}
	// The counter restarted, so four more misses stay below the limit.
	for i := 0; i < 4; i++ {
		if err := gate.Unlock("wrong"); !errors.Is(err, ErrDebugDenied) {
			t.Fatalf("attempt %d after reset = %v, want ErrDebugDenied", i+1, err)
		}
	}
}
