package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Look = Define(Definition{
	Name:        "look",
	Aliases:     []string{"l"},
	Usage:       "look [target]",
	Description: "describe your surroundings or inspect a target",
}, func(ctx *Context) bool {
	target := strings.TrimSpace(ctx.Arg)
	if target == "" {
		for _, line := range ctx.World.DescribeRoom(ctx.Player.Room, Width) {
			ctx.Player.Output.Push(game.Ansi(line))
		}
		return false
	}

	for _, npc := range ctx.World.RoomNPCs(ctx.Player.Room) {
		if !strings.EqualFold(npc.Name, target) {
			continue
		}
		ctx.Player.Output.Push(game.Ansi(fmt.Sprintf(
			"%s of the %s stands here, watching the street.",
			game.HighlightNPCName(npc.Name), npc.Gang,
		)))
		return false
	}
	for _, item := range ctx.World.RoomItems(ctx.Player.Room) {
		if !strings.EqualFold(item.Name, target) {
			continue
		}
		desc := strings.TrimSpace(item.Description)
		if desc == "" {
			desc = "You see nothing special."
		}
		ctx.Player.Output.Push(game.Ansi(fmt.Sprintf(
			"You study the %s. %s",
			game.HighlightItemName(item.Name), game.WrapText(desc, Width),
		)))
		return false
	}
	ctx.Player.Output.Push(game.Ansi("You don't see that here."))
	return false
})
