package commands

import (
	"fmt"

	"VineRow/internal/game"
)

var Harvest = Define(Definition{
	Name:         "harvest",
	Usage:        "harvest",
	Description:  "gather whatever has grown in this room's beds",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	count, err := ctx.World.HarvestCrops()
	if err != nil {
		ctx.Player.Output.Push(game.Ansi(game.Style(err.Error(), game.AnsiYellow)))
		return false
	}
	text := "You harvest a bundle of fresh greens."
	if count > 1 {
		text = fmt.Sprintf("You harvest %d bundles of fresh greens.", count)
	}
	if shown, out := ctx.World.Router().Submit(text); shown {
		ctx.Player.Output.Push(game.Ansi(out))
	}
	return false
})
