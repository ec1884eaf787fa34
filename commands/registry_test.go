package commands

import (
	"strings"
	"testing"

	"VineRow/internal/game"
)

func newTestWorld(t *testing.T, opts ...game.WorldOption) (*game.World, *game.Player) {
	t.Helper()
	opts = append([]game.WorldOption{game.WithWorldSeed(7)}, opts...)
	world, err := game.NewWorld(opts...)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return world, world.Player()
}

func drained(player *game.Player) string {
	return strings.Join(player.Output.Drain(), "\n")
}

func TestLookupResolvesAliases(t *testing.T) {
	cmd, ok := Lookup("n")
	if !ok || cmd.Name != "north" {
		t.Fatalf("Lookup(n) = %v, %v", cmd, ok)
	}
	cmd, ok = Lookup("INBOX")
	if !ok || cmd.Name != "notifications" {
		t.Fatalf("Lookup(INBOX) = %v, %v", cmd, ok)
	}
	if _, ok := Lookup("teleport"); ok {
		t.Fatalf("Lookup resolved an unregistered command")
	}
}

func TestAllSortedByName(t *testing.T) {
	cmds := All()
	if len(cmds) == 0 {
		t.Fatalf("no commands registered")
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1].Name > cmds[i].Name {
			t.Fatalf("All() out of order: %q before %q", cmds[i-1].Name, cmds[i].Name)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	world, player := newTestWorld(t)

	quit, turn := Dispatch(world, player, "teleport home")
	if quit || turn {
		t.Fatalf("Dispatch = %v, %v, want false, false", quit, turn)
	}
	if out := drained(player); !strings.Contains(out, "Unknown command") {
		t.Fatalf("output = %q", out)
	}
}

func TestDispatchEmptyLine(t *testing.T) {
	world, player := newTestWorld(t)

	quit, turn := Dispatch(world, player, "   ")
	if quit || turn {
		t.Fatalf("Dispatch = %v, %v, want false, false", quit, turn)
	}
	if out := drained(player); out != "" {
		t.Fatalf("output = %q, want none", out)
	}
}

func TestDispatchTurnConsumption(t *testing.T) {
	world, player := newTestWorld(t)

	if _, turn := Dispatch(world, player, "wait"); !turn {
		t.Fatalf("wait did not consume a turn")
	}
	if _, turn := Dispatch(world, player, "look"); turn {
		t.Fatalf("look consumed a turn")
	}
	player.Output.Drain()
}

func TestDispatchQuit(t *testing.T) {
	world, player := newTestWorld(t)

	quit, _ := Dispatch(world, player, "quit")
	if !quit {
		t.Fatalf("quit did not end the session")
	}
	player.Output.Drain()
}
