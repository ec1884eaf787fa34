package game

// Player represents the single adventurer in the world.
type Player struct {
	Name      string
	Room      RoomID
	Home      RoomID
	Inventory []Item
	Output    *Console
}

// HasItem reports whether the player carries an item with the given name.
func (p *Player) HasItem(name string) bool {
	for _, item := range p.Inventory {
		if equalFoldTrim(item.Name, name) {
			return true
		}
	}
	return false
}
