package game

import (
	"strings"
	"testing"
)

func newTestWorld(t *testing.T, opts ...WorldOption) *World {
	t.Helper()
	opts = append([]WorldOption{WithWorldSeed(7)}, opts...)
	world, err := NewWorld(opts...)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return world
}

func TestNewWorldStartsAtTheLot(t *testing.T) {
	world := newTestWorld(t)

	room, ok := world.GetRoom(world.Player().Room)
	if !ok {
		t.Fatalf("player starts in an unknown room")
	}
	if room.Title != "Community Lot" {
		t.Fatalf("starting room = %q, want Community Lot", room.Title)
	}
	if world.Clock().Current() != 0 {
		t.Fatalf("clock = %d, want 0 before the first turn", world.Clock().Current())
	}
}

func TestMove(t *testing.T) {
	world := newTestWorld(t)

	next, err := world.Move("north")
	if err != nil {
		t.Fatalf("Move(north): %v", err)
	}
	if world.Player().Room != next {
		t.Fatalf("player room = %v, want %v", world.Player().Room, next)
	}
	room, _ := world.GetRoom(next)
	if room.Title != "Vine Row" {
		t.Fatalf("moved to %q, want Vine Row", room.Title)
	}

	if _, err := world.Move("up"); err == nil {
		t.Fatalf("Move(up) succeeded through a missing exit")
	}
}

func TestTakeAndDropItem(t *testing.T) {
	world := newTestWorld(t)

	item, err := world.TakeItem("rusty trowel")
	if err != nil {
		t.Fatalf("TakeItem: %v", err)
	}
	if item.Name != "rusty trowel" || !world.Player().HasItem("rusty trowel") {
		t.Fatalf("TakeItem = %+v", item)
	}
	if _, err := world.TakeItem("rusty trowel"); err == nil {
		t.Fatalf("TakeItem succeeded for an item no longer present")
	}

	if _, err := world.DropItem("rusty trowel"); err != nil {
		t.Fatalf("DropItem: %v", err)
	}
	if world.Player().HasItem("rusty trowel") {
		t.Fatalf("inventory still holds a dropped item")
	}
	if _, err := world.DropItem("rusty trowel"); err == nil {
		t.Fatalf("DropItem succeeded for an item not carried")
	}
}

func TestDescribeRoom(t *testing.T) {
	world := newTestWorld(t)

	lines := world.DescribeRoom(world.Player().Room, 80)
	if len(lines) < 3 {
		t.Fatalf("DescribeRoom = %v", lines)
	}
	if !strings.Contains(lines[0], "Community Lot") {
		t.Fatalf("title line = %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Exits:") {
		t.Fatalf("description missing exits:\n%s", joined)
	}
	if !strings.Contains(joined, "Mags") {
		t.Fatalf("description missing the resident NPC:\n%s", joined)
	}

	missing := world.DescribeRoom(RoomID("nowhere"), 80)
	if len(missing) != 1 || !strings.Contains(missing[0], "You seem to be nowhere.") {
		t.Fatalf("DescribeRoom(unknown) = %v", missing)
	}
}

func TestTickAdvancesAndRecords(t *testing.T) {
	world := newTestWorld(t)

	world.Tick()
	if got := world.Clock().Current(); got != 1 {
		t.Fatalf("clock = %d, want 1", got)
	}
	// Every NPC takes a turn, so the ring holds at least one event apiece.
	if got := len(world.Router().History()); got < 3 {
		t.Fatalf("len(History) = %d, want at least 3", got)
	}

	for i := 0; i < 9; i++ {
		world.Tick()
	}
	if got := world.Clock().Current(); got != 10 {
		t.Fatalf("clock = %d, want 10", got)
	}
}

func TestTickDeliversReminder(t *testing.T) {
	world := newTestWorld(t, WithReminderCadence(1))
	world.Inbox().Add("wallet stolen", "npc", 4)

	lines := world.Tick()
	want := "You have 1 unread notification. Type 'notifications' to view it."
	found := false
	for _, line := range lines {
		if line == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("Tick lines = %v, want a reminder", lines)
	}
}

func TestReminderDoesNotFeedBackIntoInbox(t *testing.T) {
	world := newTestWorld(t, WithReminderCadence(1))

	// Silence every collaborator's inbox forwarding so the only candidate
	// source of new entries is the reminder line itself.
	off := false
	for _, category := range AllCategories() {
		world.Registry().Patch(category, CategoryPatch{NotifyInbox: &off})
	}
	// Tuning display off must not silence reminders either.
	world.Registry().Patch(CategoryNotification, CategoryPatch{DirectShow: &off})

	world.Inbox().Add("wallet stolen", "npc", 4)

	want := "You have 1 unread notification. Type 'notifications' to view it."
	for tick := 1; tick <= 4; tick++ {
		lines := world.Tick()
		found := false
		for _, line := range lines {
			if line == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("tick %d lines = %v, want the reminder", tick, lines)
		}
	}

	if got := world.Inbox().UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount = %d, want 1; reminders must not enqueue themselves", got)
	}
	if got := world.Inbox().Len(); got != 1 {
		t.Fatalf("inbox.Len() = %d, want 1", got)
	}
	for _, entry := range world.Inbox().Snapshot() {
		if strings.Contains(entry.Message, "unread notification") {
			t.Fatalf("inbox holds a reminder line: %q", entry.Message)
		}
	}
}

func TestWithWizardPassword(t *testing.T) {
	world := newTestWorld(t, WithWizardPassword("sesame"))
	if err := world.DebugGate().Unlock("sesame"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := world.DebugGate().Unlock("compost-king"); err == nil {
		t.Fatalf("default password still accepted after an override")
	}
}

func TestWithInboxCapacity(t *testing.T) {
	world := newTestWorld(t, WithInboxCapacity(1))
	world.Inbox().Add("one", "general", 1)
	world.Inbox().Add("two", "general", 1)
	if got := world.Inbox().Len(); got != 1 {
		t.Fatalf("inbox.Len() = %d, want 1", got)
	}
}
