package game

import "strings"

// npcMarkers flag a message as being about an NPC, which switches
// classification to the NPC-specific rule chain.
var npcMarkers = []string{"member", "npc"}

// npcChain is the fixed evaluation order for NPC-marked text.
var npcChain = []Category{
	CategoryNPCGift,
	CategoryNPCHazard,
	CategoryNPCTalk,
	CategoryNPCInteraction,
	CategoryNPCMovement,
	CategoryNPCIdle,
}

// fallbackChain is evaluated for text without an NPC marker, after the
// combat and notification rules.
var fallbackChain = []Category{
	CategoryHazardEffect,
	CategoryAmbient,
	CategoryTrivial,
}

// Classifier infers a category for raw message text using the keyword sets
// held by the configuration registry. Classification is pure: first matching
// rule wins and no state is touched.
type Classifier struct {
	registry *ConfigRegistry
}

// NewClassifier constructs a classifier over the provided registry.
func NewClassifier(registry *ConfigRegistry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify resolves the category for the text. A category whose keyword set
// has been emptied simply never matches; unmatched text defaults to
// CategoryNotification.
func (c *Classifier) Classify(text string) Category {
	lowered := strings.ToLower(text)
	if c.matches(lowered, CategoryCombat) {
		return CategoryCombat
	}
	if c.matches(lowered, CategoryNotification) {
		return CategoryNotification
	}
	for _, marker := range npcMarkers {
		if !strings.Contains(lowered, marker) {
			continue
		}
		for _, category := range npcChain {
			if c.matches(lowered, category) {
				return category
			}
		}
		return CategoryNPCMinor
	}
	for _, category := range fallbackChain {
		if c.matches(lowered, category) {
			return category
		}
	}
	return CategoryNotification
}

func (c *Classifier) matches(lowered string, category Category) bool {
	for _, keyword := range c.registry.Get(category).Keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
