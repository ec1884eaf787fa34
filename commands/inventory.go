package commands

import (
	"strings"

	"VineRow/internal/game"
)

var Inventory = Define(Definition{
	Name:        "inventory",
	Aliases:     []string{"i", "inv"},
	Usage:       "inventory",
	Description: "list what you are carrying",
}, func(ctx *Context) bool {
	items := ctx.Player.Inventory
	if len(items) == 0 {
		ctx.Player.Output.Push(game.Ansi("You are carrying nothing."))
		return false
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = game.HighlightItemName(item.Name)
	}
	ctx.Player.Output.Push(game.Ansi("You are carrying: " + strings.Join(names, ", ")))
	return false
})
