package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// summaryInterval controls how often Tick flushes the unshown backlog into a
// digest.
const summaryInterval = 5

type RoomID string

type Room struct {
	ID          RoomID
	Title       string
	Description string
	Exits       map[string]RoomID
	Items       []Item
}

// Item represents an object that can exist in rooms or the player's
// inventory.
type Item struct {
	Name        string
	Description string
}

// World owns the room graph, the NPC roster, and the message pipeline. All
// mutation is turn-synchronous: the loop calls Tick once per turn and
// command handlers run strictly between ticks.
type World struct {
	mu     sync.Mutex
	rooms  map[RoomID]*Room
	npcs   []*NPC
	player *Player
	plots  map[RoomID][]planting
	random *rand.Rand

	registry *ConfigRegistry
	clock    *TurnClock
	inbox    *Inbox
	router   *Router
	gate     *DebugGate
}

type worldConfig struct {
	seed          int64
	wizard        string
	reminderEvery int
	inboxCapacity int
	scripts       []string
}

// WorldOption adjusts world construction.
type WorldOption func(*worldConfig)

// WithWorldSeed makes every random draw in the simulation deterministic.
func WithWorldSeed(seed int64) WorldOption {
	return func(c *worldConfig) {
		c.seed = seed
	}
}

// WithWizardPassword overrides the password guarding the debug gate.
func WithWizardPassword(password string) WorldOption {
	return func(c *worldConfig) {
		if strings.TrimSpace(password) != "" {
			c.wizard = password
		}
	}
}

// WithReminderCadence enables inbox reminders at the given turn interval.
func WithReminderCadence(turns int) WorldOption {
	return func(c *worldConfig) {
		c.reminderEvery = turns
	}
}

// WithInboxCapacity bounds the notification inbox.
func WithInboxCapacity(capacity int) WorldOption {
	return func(c *worldConfig) {
		c.inboxCapacity = capacity
	}
}

// WithAmbientSources replaces the bundled ambient script set.
func WithAmbientSources(sources []string) WorldOption {
	return func(c *worldConfig) {
		c.scripts = sources
	}
}

// NewWorld wires the full pipeline: registry, clock, inbox, script provider,
// router, debug gate, and the seeded neighborhood.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg := worldConfig{
		seed:          time.Now().UnixNano(),
		wizard:        "compost-king",
		inboxCapacity: DefaultInboxCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := NewConfigRegistry()
	clock := &TurnClock{}
	inbox := NewInbox(
		WithCapacity(cfg.inboxCapacity),
		WithReminderEvery(cfg.reminderEvery),
		WithInboxSeed(cfg.seed),
	)
	provider := NewScriptProvider(cfg.scripts, WithScriptSeed(cfg.seed))
	source := rand.New(rand.NewSource(cfg.seed))
	router := NewRouter(registry, clock,
		WithInbox(inbox),
		WithRandom(source.Float64),
		WithTextProvider(provider),
	)
	gate, err := NewDebugGate(cfg.wizard)
	if err != nil {
		return nil, fmt.Errorf("debug gate: %w", err)
	}

	world := &World{
		rooms:    seedRooms(),
		npcs:     seedNPCs(),
		plots:    make(map[RoomID][]planting),
		random:   source,
		registry: registry,
		clock:    clock,
		inbox:    inbox,
		router:   router,
		gate:     gate,
	}
	world.player = &Player{
		Name:   "you",
		Room:   roomLot,
		Home:   roomLot,
		Output: &Console{},
	}
	return world, nil
}

// Player returns the adventurer.
func (w *World) Player() *Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player
}

// Router exposes the message router.
func (w *World) Router() *Router {
	return w.router
}

// Inbox exposes the notification inbox.
func (w *World) Inbox() *Inbox {
	return w.inbox
}

// Registry exposes the category configuration registry.
func (w *World) Registry() *ConfigRegistry {
	return w.registry
}

// Clock exposes the turn clock. Only the game loop may advance it.
func (w *World) Clock() *TurnClock {
	return w.clock
}

// DebugGate exposes the wizard gate for the debug command.
func (w *World) DebugGate() *DebugGate {
	return w.gate
}

// GetRoom returns the room with the given ID.
func (w *World) GetRoom(id RoomID) (*Room, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[id]
	return room, ok
}

// Move walks the player through an exit of their current room.
func (w *World) Move(dir string) (RoomID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[w.player.Room]
	if !ok {
		return "", fmt.Errorf("unknown room: %s", w.player.Room)
	}
	next, ok := room.Exits[strings.ToLower(strings.TrimSpace(dir))]
	if !ok {
		return "", fmt.Errorf("you can't go that way")
	}
	w.player.Room = next
	return next, nil
}

// RoomNPCs returns the NPCs currently in the room.
func (w *World) RoomNPCs(id RoomID) []*NPC {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*NPC
	for _, npc := range w.npcs {
		if npc.Room == id {
			out = append(out, npc)
		}
	}
	return out
}

// RoomItems returns a snapshot of the items lying in the room.
func (w *World) RoomItems(id RoomID) []Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[id]
	if !ok || len(room.Items) == 0 {
		return nil
	}
	out := make([]Item, len(room.Items))
	copy(out, room.Items)
	return out
}

// TakeItem moves a named item from the player's room into their inventory.
func (w *World) TakeItem(name string) (Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[w.player.Room]
	if !ok {
		return Item{}, fmt.Errorf("unknown room: %s", w.player.Room)
	}
	for i, item := range room.Items {
		if !equalFoldTrim(item.Name, name) {
			continue
		}
		room.Items = append(room.Items[:i], room.Items[i+1:]...)
		w.player.Inventory = append(w.player.Inventory, item)
		return item, nil
	}
	return Item{}, fmt.Errorf("there is no %s here", strings.TrimSpace(name))
}

// DropItem moves a named item from the player's inventory onto the floor.
func (w *World) DropItem(name string) (Item, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[w.player.Room]
	if !ok {
		return Item{}, fmt.Errorf("unknown room: %s", w.player.Room)
	}
	for i, item := range w.player.Inventory {
		if !equalFoldTrim(item.Name, name) {
			continue
		}
		w.player.Inventory = append(w.player.Inventory[:i], w.player.Inventory[i+1:]...)
		room.Items = append(room.Items, item)
		return item, nil
	}
	return Item{}, fmt.Errorf("you aren't carrying a %s", strings.TrimSpace(name))
}

// DescribeRoom renders the standard room report: title, wrapped description,
// exits, then any NPCs and items present.
func (w *World) DescribeRoom(id RoomID, width int) []string {
	w.mu.Lock()
	room, ok := w.rooms[id]
	if !ok {
		w.mu.Unlock()
		return []string{Style("You seem to be nowhere.", AnsiYellow)}
	}
	title := room.Title
	desc := room.Description
	exits := strings.Join(sortedExits(room), " ")
	items := make([]Item, len(room.Items))
	copy(items, room.Items)
	w.mu.Unlock()

	lines := []string{
		Style(title, AnsiBold, AnsiCyan),
		Style(WrapText(desc, width), AnsiItalic, AnsiDim),
		"Exits: " + Style(exits, AnsiGreen),
	}
	if npcs := w.RoomNPCs(id); len(npcs) > 0 {
		names := make([]string, len(npcs))
		for i, npc := range npcs {
			names[i] = HighlightNPCName(npc.Name)
		}
		lines = append(lines, "You notice: "+strings.Join(names, ", "))
	}
	if len(items) > 0 {
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = HighlightItemName(item.Name)
		}
		lines = append(lines, "On the ground: "+strings.Join(names, ", "))
	}
	return lines
}

var ambientLines = []string{
	"A light rain begins to fall.",
	"Wind rattles the fence wire.",
	"A distant train rolls through the dark.",
}

var hazardEffectLines = []string{
	"The hazard by the shed sputters and sparks.",
	"Chemical fumes drift out of the alley.",
	"A jolt of shock snaps across the downed line.",
}

// Tick advances one game turn: clock first, then the inbox reminder hook,
// then NPC and environmental behaviors, and finally the periodic summary
// flush. The returned lines are everything the router cleared for direct
// display this turn.
func (w *World) Tick() []string {
	turn := w.clock.Advance()
	var lines []string

	// Reminder lines bypass the router: routing them would re-enqueue each
	// reminder through the notification category's inbox flag, and category
	// tuning could silence them.
	if reminder, ok := w.inbox.AdvanceTurn(); ok {
		lines = append(lines, reminder)
	}

	w.mu.Lock()
	npcs := make([]*NPC, len(w.npcs))
	copy(npcs, w.npcs)
	w.mu.Unlock()
	for _, npc := range npcs {
		w.mu.Lock()
		shownLines := w.npcTurn(npc)
		w.mu.Unlock()
		lines = append(lines, shownLines...)
	}

	if w.random.Float64() < 0.25 {
		text := ambientLines[w.random.Intn(len(ambientLines))]
		if shown, display := w.router.Submit(text, WithCategory(CategoryAmbient), WithPriority(PriorityLow)); shown {
			lines = append(lines, display)
		}
	}
	if w.random.Float64() < 0.10 {
		text := hazardEffectLines[w.random.Intn(len(hazardEffectLines))]
		if shown, display := w.router.Submit(text, WithCategory(CategoryHazardEffect), WithPriority(PriorityLow)); shown {
			lines = append(lines, display)
		}
	}

	if turn%summaryInterval == 0 {
		if summary, ok := w.router.Summarize(nil, true); ok {
			lines = append(lines, Style("Meanwhile:", AnsiDim))
			lines = append(lines, strings.Split(summary, "\n")...)
		}
	}

	if len(lines) == 0 {
		if filler, ok := w.router.FillerLine(turn); ok {
			if shown, display := w.router.Submit(filler, WithCategory(CategoryAmbient), WithPriority(PriorityLow)); shown {
				lines = append(lines, display)
			}
		}
	}
	return lines
}

func sortedExits(room *Room) []string {
	if len(room.Exits) == 0 {
		return nil
	}
	out := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

const (
	roomLot    RoomID = "lot"
	roomStreet RoomID = "street"
	roomStore  RoomID = "store"
	roomAlley  RoomID = "alley"
)

func seedRooms() map[RoomID]*Room {
	rooms := []*Room{
		{
			ID:          roomLot,
			Title:       "Community Lot",
			Description: "Raised planter beds fill a reclaimed parking lot. A tool shed leans in the corner, half swallowed by squash vines.",
			Exits:       map[string]RoomID{"north": roomStreet, "east": roomAlley},
			Items: []Item{
				{Name: "rusty trowel", Description: "The handle is wrapped in electrical tape."},
				{Name: "watering can", Description: "Dented, but it holds water."},
			},
		},
		{
			ID:          roomStreet,
			Title:       "Vine Row",
			Description: "The main drag. Dead neon buzzes over shuttered storefronts, and planter boxes line the curb where parking meters used to be.",
			Exits:       map[string]RoomID{"south": roomLot, "east": roomStore},
		},
		{
			ID:          roomStore,
			Title:       "Corner Store",
			Description: "Shelves of canned goods and seed packets. The cooler hums louder than the conversation.",
			Exits:       map[string]RoomID{"west": roomStreet},
			Items: []Item{
				{Name: "seed packet", Description: "Tomatoes, allegedly."},
			},
		},
		{
			ID:          roomAlley,
			Title:       "Service Alley",
			Description: "Narrow and damp. Someone has strung grow lights over a row of buckets sprouting greens.",
			Exits:       map[string]RoomID{"west": roomLot},
		},
	}
	out := make(map[RoomID]*Room, len(rooms))
	for _, room := range rooms {
		out[room.ID] = room
	}
	return out
}

func seedNPCs() []*NPC {
	return []*NPC{
		{Name: "Sorrel", Gang: "Thistle Crew", Room: roomStreet},
		{Name: "Mags", Gang: "Thistle Crew", Room: roomLot},
		{Name: "Dex", Gang: "Marrow Boys", Room: roomAlley},
	}
}
