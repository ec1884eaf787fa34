package game

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultHistoryCapacity bounds the router's event ring buffer.
const DefaultHistoryCapacity = 1000

// TextProvider supplies an occasional filler line for turns that would
// otherwise pass silently. The router never reaches into world code for
// flavor text; anything of the sort comes through this seam.
type TextProvider interface {
	FillerLine(turn int) (string, bool)
}

// Router is the turn-aware gate between world collaborators and the player.
// Every candidate message passes through Submit, which applies the
// category's throttle, cooldown, and priority policy, records the event in a
// bounded history, and forwards inbox-worthy messages to the notification
// inbox.
type Router struct {
	mu         sync.Mutex
	registry   *ConfigRegistry
	classifier *Classifier
	clock      *TurnClock
	inbox      *Inbox
	filler     TextProvider
	random     func() float64
	now        func() time.Time

	history  []*Event
	capacity int
	// lifetime counts are cumulative per category and are deliberately not
	// decremented when the ring evicts; BufferedCount reports the ring's
	// true contents.
	lifetime  map[Category]int
	lastShown map[Category]int
	debug     bool
}

// RouterOption adjusts router construction.
type RouterOption func(*Router)

// WithInbox attaches a notification inbox. Without one, inbox forwarding is
// skipped.
func WithInbox(inbox *Inbox) RouterOption {
	return func(r *Router) {
		r.inbox = inbox
	}
}

// WithRandom overrides the throttle draw source. The function must return
// values in [0, 1).
func WithRandom(random func() float64) RouterOption {
	return func(r *Router) {
		if random != nil {
			r.random = random
		}
	}
}

// WithHistoryCapacity bounds the event ring buffer.
func WithHistoryCapacity(capacity int) RouterOption {
	return func(r *Router) {
		if capacity > 0 {
			r.capacity = capacity
		}
	}
}

// WithTextProvider attaches a filler-line provider.
func WithTextProvider(provider TextProvider) RouterOption {
	return func(r *Router) {
		r.filler = provider
	}
}

// WithRouterClock overrides the event timestamp source.
func WithRouterClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRouter constructs a router over the provided registry and turn clock.
func NewRouter(registry *ConfigRegistry, clock *TurnClock, opts ...RouterOption) *Router {
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	router := &Router{
		registry:   registry,
		classifier: NewClassifier(registry),
		clock:      clock,
		random:     source.Float64,
		now:        time.Now,
		capacity:   DefaultHistoryCapacity,
		lifetime:   make(map[Category]int),
		lastShown:  make(map[Category]int),
	}
	for _, opt := range opts {
		opt(router)
	}
	return router
}

type submission struct {
	category    Category
	hasCategory bool
	priority    Priority
	source      string
	target      string
	metadata    map[string]string
}

// SubmitOption refines a single Submit call.
type SubmitOption func(*submission)

// WithCategory supplies an explicit category, bypassing classification.
func WithCategory(category Category) SubmitOption {
	return func(s *submission) {
		s.category = category
		s.hasCategory = true
	}
}

// WithPriority overrides the default medium priority.
func WithPriority(priority Priority) SubmitOption {
	return func(s *submission) {
		s.priority = priority
	}
}

// WithSource records the entity that produced the message.
func WithSource(name string) SubmitOption {
	return func(s *submission) {
		s.source = name
	}
}

// WithTarget records the entity the message is about.
func WithTarget(name string) SubmitOption {
	return func(s *submission) {
		s.target = name
	}
}

// WithMetadata attaches one metadata key to the event.
func WithMetadata(key, value string) SubmitOption {
	return func(s *submission) {
		if s.metadata == nil {
			s.metadata = make(map[string]string)
		}
		s.metadata[key] = value
	}
}

// Submit routes one candidate message. It returns whether the message should
// be echoed directly this turn, along with the display text. Regardless of
// the verdict the event is recorded in history, and categories flagged for
// the inbox are forwarded there independently of direct display.
func (r *Router) Submit(text string, opts ...SubmitOption) (bool, string) {
	sub := submission{priority: PriorityMedium}
	for _, opt := range opts {
		opt(&sub)
	}
	if !sub.hasCategory {
		sub.category = r.classifier.Classify(text)
	}

	event := &Event{
		Text:      text,
		Category:  sub.category,
		Priority:  sub.priority,
		Source:    sub.source,
		Target:    sub.target,
		Timestamp: r.now(),
		Metadata:  sub.metadata,
	}

	r.mu.Lock()
	r.history = append(r.history, event)
	for len(r.history) > r.capacity {
		r.history = r.history[1:]
	}
	r.lifetime[sub.category]++

	cfg := r.registry.Get(sub.category)
	turn := r.clock.Current()
	onCooldown := cfg.CooldownTurns > 0 && turn-r.lastShown[sub.category] < cfg.CooldownTurns
	throttled := r.random() < cfg.ThrottleRate

	shouldShow := cfg.DirectShow && !throttled && !onCooldown
	if sub.category == CategoryDebug && r.debug {
		shouldShow = true
	}
	if sub.priority == PriorityCritical {
		shouldShow = true
	}
	if shouldShow {
		event.Shown = true
		r.lastShown[sub.category] = turn
	}
	r.mu.Unlock()

	if cfg.NotifyInbox && r.inbox != nil {
		r.inbox.Add(text, cfg.NotifyBucket, cfg.Importance)
	}
	return shouldShow, text
}

// SetDebug toggles visibility of debug-category messages.
func (r *Router) SetDebug(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = enabled
}

// DebugEnabled reports whether debug-category messages are visible.
func (r *Router) DebugEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.debug
}

// LifetimeCount returns the cumulative number of events ever submitted for
// the category. Ring eviction does not decrement it.
func (r *Router) LifetimeCount(category Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lifetime[category]
}

// BufferedCount returns the number of events for the category currently held
// in the history ring.
func (r *Router) BufferedCount(category Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, event := range r.history {
		if event.Category == category {
			count++
		}
	}
	return count
}

// History returns a snapshot of the event ring in insertion order.
func (r *Router) History() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.history))
	for i, event := range r.history {
		out[i] = *event
	}
	return out
}

// ClearHistory drops buffered events. With no arguments the whole ring and
// all lifetime counters reset; with categories, only matching events and
// their counters are dropped.
func (r *Router) ClearHistory(categories ...Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(categories) == 0 {
		r.history = nil
		r.lifetime = make(map[Category]int)
		return
	}
	drop := make(map[Category]struct{}, len(categories))
	for _, category := range categories {
		drop[category] = struct{}{}
		r.lifetime[category] = 0
	}
	kept := r.history[:0]
	for _, event := range r.history {
		if _, ok := drop[event.Category]; ok {
			continue
		}
		kept = append(kept, event)
	}
	r.history = kept
}

// Classify exposes the router's classifier for callers that only need the
// category verdict.
func (r *Router) Classify(text string) Category {
	return r.classifier.Classify(text)
}

// FillerLine asks the attached text provider for an ambient line.
func (r *Router) FillerLine(turn int) (string, bool) {
	if r.filler == nil {
		return "", false
	}
	return r.filler.FillerLine(turn)
}
