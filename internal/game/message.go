package game

import (
	"strings"
	"sync"
	"time"
)

// Category identifies the taxonomy bucket that governs a message's default
// visibility, throttling, cooldown, and inbox policy.
type Category string

const (
	CategoryPlayerAction   Category = "player_action"
	CategoryCombat         Category = "combat"
	CategoryCritical       Category = "critical"
	CategoryNotification   Category = "notification"
	CategoryNPCMinor       Category = "npc_minor"
	CategoryNPCIdle        Category = "npc_idle"
	CategoryNPCMovement    Category = "npc_movement"
	CategoryNPCInteraction Category = "npc_interaction"
	CategoryNPCTalk        Category = "npc_talk"
	CategoryNPCGift        Category = "npc_gift"
	CategoryNPCHazard      Category = "npc_hazard"
	CategoryNPCSummary     Category = "npc_summary"
	CategoryHazardEffect   Category = "hazard_effect"
	CategoryAmbient        Category = "ambient"
	CategoryTrivial        Category = "trivial"
	CategoryDebug          Category = "debug"
)

var allCategories = []Category{
	CategoryPlayerAction,
	CategoryCombat,
	CategoryCritical,
	CategoryNotification,
	CategoryNPCMinor,
	CategoryNPCIdle,
	CategoryNPCMovement,
	CategoryNPCInteraction,
	CategoryNPCTalk,
	CategoryNPCGift,
	CategoryNPCHazard,
	CategoryNPCSummary,
	CategoryHazardEffect,
	CategoryAmbient,
	CategoryTrivial,
	CategoryDebug,
}

var categoryLookup = func() map[string]Category {
	lookup := make(map[string]Category, len(allCategories))
	for _, category := range allCategories {
		lookup[string(category)] = category
	}
	return lookup
}()

// AllCategories returns the closed set of message categories.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryFromString resolves a textual category name into the canonical
// identifier.
func CategoryFromString(name string) (Category, bool) {
	category, ok := categoryLookup[strings.ToLower(strings.TrimSpace(name))]
	return category, ok
}

// Priority ranks a message within its category. Lower values outrank higher
// ones; PriorityCritical always forces direct display.
type Priority int

const (
	PriorityCritical Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
	PriorityMinimal
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PriorityMinimal:
		return "minimal"
	}
	return "unknown"
}

// Event records one candidate message submitted to the router. Events are
// immutable once created except for Shown, which flips false to true exactly
// once when the event is consumed for display, either as a direct echo or by
// a summary drain.
type Event struct {
	Text      string
	Category  Category
	Priority  Priority
	Source    string
	Target    string
	Timestamp time.Time
	Metadata  map[string]string
	Shown     bool
}

// CategoryConfig holds the static policy for one category. ThrottleRate is
// the probability of suppression: 0 never suppresses, 1 always does.
// Policies are looked up at decision time, never copied into events.
type CategoryConfig struct {
	DirectShow    bool
	NotifyInbox   bool
	ThrottleRate  float64
	CooldownTurns int
	Importance    int
	NotifyBucket  string
	Keywords      []string
}

// CategoryPatch describes a partial update to a category's policy. Nil
// fields leave the current value untouched; Keywords replaces the whole set
// when non-nil.
type CategoryPatch struct {
	DirectShow    *bool
	NotifyInbox   *bool
	ThrottleRate  *float64
	CooldownTurns *int
	Importance    *int
	NotifyBucket  *string
	Keywords      []string
}

// ConfigRegistry owns the per-category policies. Defaults are seeded once at
// construction; runtime changes go through Patch and are never applied in
// the middle of a routing decision.
type ConfigRegistry struct {
	mu      sync.RWMutex
	configs map[Category]CategoryConfig
}

// NewConfigRegistry constructs a registry seeded with the default taxonomy.
func NewConfigRegistry() *ConfigRegistry {
	configs := make(map[Category]CategoryConfig, len(defaultConfigs))
	for category, cfg := range defaultConfigs {
		configs[category] = cloneConfig(cfg)
	}
	return &ConfigRegistry{configs: configs}
}

// Get returns the policy for the category. Unknown categories yield the zero
// policy, under which only a critical-priority override can surface an
// event; no error is reported.
func (r *ConfigRegistry) Get(category Category) CategoryConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[category]
	if !ok {
		return CategoryConfig{}
	}
	return cloneConfig(cfg)
}

// Patch applies a partial policy update to the category.
func (r *ConfigRegistry) Patch(category Category, patch CategoryPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg := r.configs[category]
	if patch.DirectShow != nil {
		cfg.DirectShow = *patch.DirectShow
	}
	if patch.NotifyInbox != nil {
		cfg.NotifyInbox = *patch.NotifyInbox
	}
	if patch.ThrottleRate != nil {
		cfg.ThrottleRate = clampRate(*patch.ThrottleRate)
	}
	if patch.CooldownTurns != nil {
		cfg.CooldownTurns = *patch.CooldownTurns
	}
	if patch.Importance != nil {
		cfg.Importance = clampImportance(*patch.Importance)
	}
	if patch.NotifyBucket != nil {
		cfg.NotifyBucket = strings.TrimSpace(*patch.NotifyBucket)
	}
	if patch.Keywords != nil {
		keywords := make([]string, len(patch.Keywords))
		copy(keywords, patch.Keywords)
		cfg.Keywords = keywords
	}
	r.configs[category] = cfg
}

func cloneConfig(cfg CategoryConfig) CategoryConfig {
	if cfg.Keywords != nil {
		keywords := make([]string, len(cfg.Keywords))
		copy(keywords, cfg.Keywords)
		cfg.Keywords = keywords
	}
	return cfg
}

func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

func clampImportance(importance int) int {
	if importance < 1 {
		return 1
	}
	if importance > 5 {
		return 5
	}
	return importance
}

// Keyword sets are scanned in declared order; within one rule set the first
// declared keyword present in the text wins.
var defaultConfigs = map[Category]CategoryConfig{
	CategoryPlayerAction: {
		DirectShow:   true,
		NotifyBucket: "player",
		Importance:   2,
	},
	CategoryCombat: {
		DirectShow:   true,
		NotifyBucket: "combat",
		Importance:   5,
		Keywords:     []string{"attack", "damage", "fight", "strike", "struck", "swings"},
	},
	CategoryCritical: {
		DirectShow:   true,
		NotifyInbox:  true,
		NotifyBucket: "general",
		Importance:   5,
	},
	CategoryNotification: {
		DirectShow:   true,
		NotifyInbox:  true,
		NotifyBucket: "general",
		Importance:   3,
		Keywords:     []string{"you receive", "discover", "planted", "harvest", "has died", "death"},
	},
	CategoryNPCMinor: {
		DirectShow:    true,
		ThrottleRate:  0.7,
		CooldownTurns: 3,
		NotifyBucket:  "npc",
		Importance:    1,
	},
	CategoryNPCIdle: {
		DirectShow:    true,
		ThrottleRate:  0.9,
		CooldownTurns: 5,
		NotifyBucket:  "npc",
		Importance:    1,
		Keywords:      []string{"stands", "waits", "idles", "loiters", "leans"},
	},
	CategoryNPCMovement: {
		DirectShow:    true,
		ThrottleRate:  0.8,
		CooldownTurns: 4,
		NotifyBucket:  "npc",
		Importance:    1,
		Keywords:      []string{"walks", "runs", "moves", "wanders", "climbs", "sneaks"},
	},
	CategoryNPCInteraction: {
		DirectShow:    true,
		ThrottleRate:  0.6,
		CooldownTurns: 3,
		NotifyBucket:  "npc",
		Importance:    2,
		Keywords:      []string{"picks up", "interacts", "using", "fiddles", "examines"},
	},
	CategoryNPCTalk: {
		DirectShow:    true,
		ThrottleRate:  0.5,
		CooldownTurns: 2,
		NotifyBucket:  "npc",
		Importance:    2,
		Keywords:      []string{"says", "talks", "speaks", "shouts", "whispers", "mutters"},
	},
	CategoryNPCGift: {
		DirectShow:    true,
		NotifyInbox:   true,
		ThrottleRate:  0.2,
		CooldownTurns: 1,
		NotifyBucket:  "item",
		Importance:    5,
		Keywords:      []string{"gives you", "gift", "hands you", "offers"},
	},
	CategoryNPCHazard: {
		DirectShow:    true,
		NotifyInbox:   true,
		ThrottleRate:  0.3,
		CooldownTurns: 2,
		NotifyBucket:  "hazard",
		Importance:    4,
		Keywords:      []string{"triggers", "sets off", "hazard", "resists", "hallucinat"},
	},
	CategoryNPCSummary: {
		DirectShow:   true,
		NotifyBucket: "npc",
		Importance:   2,
	},
	CategoryHazardEffect: {
		DirectShow:    true,
		NotifyInbox:   true,
		ThrottleRate:  0.9,
		CooldownTurns: 5,
		NotifyBucket:  "hazard",
		Importance:    3,
		Keywords:      []string{"hazard", "effect", "fumes", "shock"},
	},
	CategoryAmbient: {
		DirectShow:    true,
		ThrottleRate:  0.8,
		CooldownTurns: 4,
		NotifyBucket:  "general",
		Importance:    1,
		Keywords:      []string{"rain", "wind", "breeze", "distant", "flickers", "hums"},
	},
	CategoryTrivial: {
		ThrottleRate:  0.95,
		CooldownTurns: 10,
		NotifyBucket:  "general",
		Importance:    1,
		Keywords:      []string{"dust", "faint", "slightly", "barely"},
	},
	CategoryDebug: {
		ThrottleRate: 1.0,
		NotifyBucket: "general",
		Importance:   1,
	},
}
