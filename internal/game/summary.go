package game

import "strings"

// summaryPerCategory caps how many lines one category may contribute to a
// single summary.
const summaryPerCategory = 3

// Summarize drains unshown buffered events into a condensed report. With a
// nil category list it covers every category configured for direct display.
// Events appear in category-then-insertion order, at most three per
// category. When clearShown is set, each included event is marked consumed
// so repeated summaries do not replay it. The second return value is false
// when nothing qualified.
func (r *Router) Summarize(categories []Category, clearShown bool) (string, bool) {
	if categories == nil {
		categories = make([]Category, 0, len(allCategories))
		for _, category := range allCategories {
			if r.registry.Get(category).DirectShow {
				categories = append(categories, category)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	grouped := make(map[Category][]*Event)
	for _, event := range r.history {
		if event.Shown {
			continue
		}
		grouped[event.Category] = append(grouped[event.Category], event)
	}

	var lines []string
	for _, category := range categories {
		events := grouped[category]
		if len(events) > summaryPerCategory {
			events = events[:summaryPerCategory]
		}
		for _, event := range events {
			if clearShown {
				event.Shown = true
			}
			lines = append(lines, event.Text)
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}
