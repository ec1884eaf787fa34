package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Drop = Define(Definition{
	Name:         "drop",
	Usage:        "drop <item>",
	Description:  "leave a carried item on the ground",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	name := strings.TrimSpace(ctx.Arg)
	if name == "" {
		ctx.Player.Output.Push(game.Ansi("Drop what?"))
		return false
	}
	item, err := ctx.World.DropItem(name)
	if err != nil {
		ctx.Player.Output.Push(game.Ansi(game.Style(err.Error(), game.AnsiYellow)))
		return false
	}
	if shown, text := ctx.World.Router().Submit(
		fmt.Sprintf("You set the %s down.", item.Name),
		game.WithCategory(game.CategoryPlayerAction),
	); shown {
		ctx.Player.Output.Push(game.Ansi(text))
	}
	return false
})
