package commands

import (
	"strings"

	"VineRow/internal/game"
)

var Summary = Define(Definition{
	Name:        "summary",
	Usage:       "summary [category...]",
	Description: "drain unshown messages into a digest",
}, func(ctx *Context) bool {
	var categories []game.Category
	for _, field := range strings.Fields(ctx.Arg) {
		category, ok := game.CategoryFromString(field)
		if !ok {
			ctx.Player.Output.Push(game.Ansi(game.Style("Unknown category: "+field, game.AnsiYellow)))
			return false
		}
		categories = append(categories, category)
	}

	text, ok := ctx.World.Router().Summarize(categories, true)
	if !ok {
		ctx.Player.Output.Push(game.Ansi("Nothing worth reporting."))
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		ctx.Player.Output.Push(game.Ansi(line))
	}
	return false
})
