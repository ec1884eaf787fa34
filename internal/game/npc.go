package game

import "fmt"

// NPC is a gang member roaming the neighborhood. NPC behaviors never touch
// the console directly; everything they do becomes a router submission.
type NPC struct {
	Name string
	Gang string
	Room RoomID
}

var npcIdleLines = []string{
	"The %s member %s leans against a graffitied wall.",
	"The %s member %s waits under the busted streetlight.",
	"The %s member %s loiters by the chain-link fence.",
}

var npcTalkLines = []string{
	"The %s member %s mutters something about the weather.",
	"The %s member %s shouts a greeting across the street.",
	"The %s member %s talks quietly into a cracked phone.",
}

var npcInteractLines = []string{
	"The %s member %s picks up a bottle and sets it down again.",
	"The %s member %s fiddles with the padlock on the tool shed.",
	"The %s member %s examines the seedlings in the planter box.",
}

var npcGiftItems = []Item{
	{Name: "wilted daisy", Description: "A daisy well past its best, offered sincerely."},
	{Name: "packet of seeds", Description: "Unlabeled seeds in a paper twist."},
	{Name: "bent bottlecap", Description: "A lucky cap, supposedly."},
}

var npcHazardTargets = []string{
	"faulty wiring by the shed",
	"rusted tripwire in the alley",
	"leaking gas valve",
}

// npcTurn runs one NPC's behavior for the turn and returns any lines the
// router cleared for direct display.
func (w *World) npcTurn(npc *NPC) []string {
	roll := w.random.Float64()
	switch {
	case roll < 0.30:
		text := fmt.Sprintf(w.pickLine(npcIdleLines), npc.Gang, npc.Name)
		return w.routeNPC(text, npc, CategoryNPCIdle, PriorityMinimal)
	case roll < 0.50:
		return w.npcMove(npc)
	case roll < 0.70:
		text := fmt.Sprintf(w.pickLine(npcTalkLines), npc.Gang, npc.Name)
		return w.routeNPC(text, npc, CategoryNPCTalk, PriorityLow)
	case roll < 0.85:
		text := fmt.Sprintf(w.pickLine(npcInteractLines), npc.Gang, npc.Name)
		return w.routeNPC(text, npc, CategoryNPCInteraction, PriorityMedium)
	case roll < 0.95:
		return w.npcGift(npc)
	default:
		target := npcHazardTargets[w.random.Intn(len(npcHazardTargets))]
		text := fmt.Sprintf("The %s member %s triggers the %s.", npc.Gang, npc.Name, target)
		return w.routeNPC(text, npc, CategoryNPCHazard, PriorityHigh)
	}
}

func (w *World) npcMove(npc *NPC) []string {
	room, ok := w.rooms[npc.Room]
	if !ok || len(room.Exits) == 0 {
		text := fmt.Sprintf(w.pickLine(npcIdleLines), npc.Gang, npc.Name)
		return w.routeNPC(text, npc, CategoryNPCIdle, PriorityMinimal)
	}
	directions := sortedExits(room)
	dir := directions[w.random.Intn(len(directions))]
	npc.Room = room.Exits[dir]
	text := fmt.Sprintf("The %s member %s wanders off toward the %s.", npc.Gang, npc.Name, dir)
	return w.routeNPC(text, npc, CategoryNPCMovement, PriorityLow)
}

// npcGift hands the player an item. The message is routed like any other
// candidate; the inventory change happens regardless of whether the line is
// shown, which is why gifts are also inbox-flagged.
func (w *World) npcGift(npc *NPC) []string {
	gift := npcGiftItems[w.random.Intn(len(npcGiftItems))]
	w.player.Inventory = append(w.player.Inventory, gift)
	text := fmt.Sprintf("The %s member %s gives you a %s.", npc.Gang, npc.Name, gift.Name)
	return w.routeNPC(text, npc, CategoryNPCGift, PriorityHigh)
}

func (w *World) routeNPC(text string, npc *NPC, category Category, priority Priority) []string {
	shown, display := w.router.Submit(text,
		WithCategory(category),
		WithPriority(priority),
		WithSource(npc.Name),
	)
	if !shown {
		return nil
	}
	return []string{display}
}

func (w *World) pickLine(pool []string) string {
	return pool[w.random.Intn(len(pool))]
}
