package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultInboxCapacity bounds the notification buffer when no override is
// supplied.
const DefaultInboxCapacity = 50

// Notification is one durable entry in the player's inbox. IDs are monotonic
// ULIDs, so lexical ID order is creation order even when timestamps collide.
type Notification struct {
	ID         string
	Message    string
	Bucket     string
	Timestamp  time.Time
	Importance int
	Read       bool
}

// Inbox stores read-tracked notifications with importance-based ordering.
// The buffer is bounded; overflow evicts the oldest entry regardless of its
// read state. The unread count always equals the number of unread entries
// physically present.
type Inbox struct {
	mu            sync.Mutex
	capacity      int
	entries       []*Notification
	unread        int
	turn          int
	lastReminder  int
	reminderEvery int
	entropy       *ulid.MonotonicEntropy
	now           func() time.Time
}

// InboxOption adjusts inbox construction.
type InboxOption func(*Inbox)

// WithCapacity bounds the notification buffer.
func WithCapacity(capacity int) InboxOption {
	return func(i *Inbox) {
		if capacity > 0 {
			i.capacity = capacity
		}
	}
}

// WithReminderEvery re-enables the periodic unread reminder with the given
// cadence in turns. Zero disables it, which is the production default.
func WithReminderEvery(turns int) InboxOption {
	return func(i *Inbox) {
		if turns >= 0 {
			i.reminderEvery = turns
		}
	}
}

// WithInboxClock overrides the timestamp source.
func WithInboxClock(now func() time.Time) InboxOption {
	return func(i *Inbox) {
		if now != nil {
			i.now = now
		}
	}
}

// WithInboxSeed makes notification IDs deterministic for a given seed.
func WithInboxSeed(seed int64) InboxOption {
	return func(i *Inbox) {
		i.entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
	}
}

// NewInbox constructs an empty notification inbox.
func NewInbox(opts ...InboxOption) *Inbox {
	inbox := &Inbox{
		capacity: DefaultInboxCapacity,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(inbox)
	}
	return inbox
}

func (i *Inbox) newIDLocked() string {
	return ulid.MustNew(ulid.Timestamp(i.now()), i.entropy).String()
}

// Add inserts a notification, returning true when it became the only unread
// entry. Before inserting, the buffer is scanned for an entry with the same
// message and bucket: an unread match makes the call a no-op, a read match
// is flipped back to unread with a refreshed timestamp instead of inserting
// a duplicate row.
func (i *Inbox) Add(message, bucket string, importance int) bool {
	bucket = normalizeBucket(bucket)
	importance = clampImportance(importance)

	i.mu.Lock()
	defer i.mu.Unlock()

	for _, entry := range i.entries {
		if entry.Message != message || entry.Bucket != bucket {
			continue
		}
		if !entry.Read {
			return false
		}
		entry.Read = false
		entry.Timestamp = i.now()
		entry.ID = i.newIDLocked()
		i.unread++
		return i.unread == 1
	}

	i.entries = append(i.entries, &Notification{
		ID:         i.newIDLocked(),
		Message:    message,
		Bucket:     bucket,
		Timestamp:  i.now(),
		Importance: importance,
	})
	i.unread++
	for len(i.entries) > i.capacity {
		evicted := i.entries[0]
		i.entries = i.entries[1:]
		if !evicted.Read {
			i.unread--
		}
	}
	return i.unread == 1
}

// Read selects notifications, optionally filtered by bucket, orders them by
// importance (highest first, newest first within a tier), takes up to count
// (all when count <= 0), removes them from the buffer, and returns the
// formatted report along with the remaining unread count.
func (i *Inbox) Read(count int, bucket string) (string, int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.entries) == 0 {
		return "You have no notifications.", 0
	}

	bucket = strings.TrimSpace(strings.ToLower(bucket))
	candidates := make([]*Notification, 0, len(i.entries))
	for _, entry := range i.entries {
		if bucket != "" && entry.Bucket != bucket {
			continue
		}
		candidates = append(candidates, entry)
	}
	if len(candidates) == 0 {
		return fmt.Sprintf("No %s notifications found.", bucket), i.unread
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Importance != candidates[b].Importance {
			return candidates[a].Importance > candidates[b].Importance
		}
		return candidates[a].ID > candidates[b].ID
	})
	if count > 0 && count < len(candidates) {
		candidates = candidates[:count]
	}

	selected := make(map[*Notification]struct{}, len(candidates))
	for _, entry := range candidates {
		selected[entry] = struct{}{}
	}
	kept := i.entries[:0]
	for _, entry := range i.entries {
		if _, ok := selected[entry]; ok {
			if !entry.Read {
				i.unread--
			}
			continue
		}
		kept = append(kept, entry)
	}
	i.entries = kept

	return formatNotifications(candidates, i.unread), i.unread
}

// Clear empties the buffer and zeroes the unread count.
func (i *Inbox) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries = nil
	i.unread = 0
}

// UnreadCount reports the number of unread notifications in the buffer.
func (i *Inbox) UnreadCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.unread
}

// Len reports the number of notifications in the buffer, read or unread.
func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.entries)
}

// Snapshot returns a copy of the buffer in insertion order.
func (i *Inbox) Snapshot() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]Notification, len(i.entries))
	for idx, entry := range i.entries {
		out[idx] = *entry
	}
	return out
}

// AdvanceTurn counts a game turn for the reminder cadence. Reminders are
// disabled by default to avoid reentrant notification loops; when enabled
// via WithReminderEvery, a reminder line is returned once per cadence window
// while unread notifications remain.
func (i *Inbox) AdvanceTurn() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.turn++
	if i.reminderEvery <= 0 || i.unread == 0 {
		return "", false
	}
	if i.turn-i.lastReminder < i.reminderEvery {
		return "", false
	}
	i.lastReminder = i.turn
	return reminderLine(i.unread), true
}

func reminderLine(unread int) string {
	if unread == 1 {
		return "You have 1 unread notification. Type 'notifications' to view it."
	}
	return fmt.Sprintf("You have %d unread notifications. Type 'notifications' to view them.", unread)
}

func normalizeBucket(bucket string) string {
	bucket = strings.TrimSpace(strings.ToLower(bucket))
	if bucket == "" {
		return "general"
	}
	return bucket
}

func formatNotifications(list []*Notification, remaining int) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("--- Notifications (%d) ---", len(list)))
	current := ""
	index := 0
	for _, entry := range list {
		if entry.Bucket != current {
			current = entry.Bucket
			index = 0
			builder.WriteString(fmt.Sprintf("\n[%s]", strings.ToUpper(current)))
		}
		index++
		builder.WriteString(fmt.Sprintf("\n%d. %s", index, entry.Message))
	}
	builder.WriteString(fmt.Sprintf("\nRemaining unread: %d", remaining))
	return builder.String()
}
