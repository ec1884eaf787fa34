package game

import (
	"fmt"
	"strings"
)

// gardenGrowTurns is how many turns a planting needs in the ground before it
// can be harvested.
const gardenGrowTurns = 5

type planting struct {
	seed string
	turn int
}

// PlantSeed sows a seed item from the player's inventory into the current
// room's beds. With an empty name the first seed-like item carried is used;
// a named item must actually be a seed.
func (w *World) PlantSeed(name string) (Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	name = strings.TrimSpace(name)
	idx := -1
	for i, item := range w.player.Inventory {
		if name == "" {
			if strings.Contains(strings.ToLower(item.Name), "seed") {
				idx = i
				break
			}
			continue
		}
		if equalFoldTrim(item.Name, name) {
			idx = i
			break
		}
	}
	if idx == -1 {
		if name == "" {
			return Item{}, fmt.Errorf("you have nothing to plant")
		}
		return Item{}, fmt.Errorf("you aren't carrying a %s", name)
	}
	seed := w.player.Inventory[idx]
	if !strings.Contains(strings.ToLower(seed.Name), "seed") {
		return Item{}, fmt.Errorf("the %s will not grow", seed.Name)
	}

	w.player.Inventory = append(w.player.Inventory[:idx], w.player.Inventory[idx+1:]...)
	w.plots[w.player.Room] = append(w.plots[w.player.Room], planting{
		seed: seed.Name,
		turn: w.clock.Current(),
	})
	return seed, nil
}

// HarvestCrops gathers every mature planting in the current room, adding one
// bundle of greens apiece to the player's inventory. Plantings that still
// need time stay in the ground.
func (w *World) HarvestCrops() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	plots := w.plots[w.player.Room]
	if len(plots) == 0 {
		return 0, fmt.Errorf("nothing is planted here")
	}
	turn := w.clock.Current()
	count := 0
	kept := make([]planting, 0, len(plots))
	for _, p := range plots {
		if turn-p.turn < gardenGrowTurns {
			kept = append(kept, p)
			continue
		}
		count++
		w.player.Inventory = append(w.player.Inventory, Item{
			Name:        "bundle of greens",
			Description: "Fresh-cut greens from the lot beds.",
		})
	}
	if count == 0 {
		return 0, fmt.Errorf("nothing here is ready to harvest")
	}
	w.plots[w.player.Room] = kept
	return count, nil
}
