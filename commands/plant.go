package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Plant = Define(Definition{
	Name:         "plant",
	Aliases:      []string{"sow"},
	Usage:        "plant [seed item]",
	Description:  "sow a carried seed in this room's beds",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	seed, err := ctx.World.PlantSeed(strings.TrimSpace(ctx.Arg))
	if err != nil {
		ctx.Player.Output.Push(game.Ansi(game.Style(err.Error(), game.AnsiYellow)))
		return false
	}
	if shown, text := ctx.World.Router().Submit(
		fmt.Sprintf("You have planted a %s in the soil.", seed.Name),
	); shown {
		ctx.Player.Output.Push(game.Ansi(text))
	}
	return false
})
