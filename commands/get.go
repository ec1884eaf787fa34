package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Get = Define(Definition{
	Name:         "get",
	Aliases:      []string{"take"},
	Usage:        "get <item>",
	Description:  "pick up an item from the ground",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	name := strings.TrimSpace(ctx.Arg)
	if name == "" {
		ctx.Player.Output.Push(game.Ansi("Get what?"))
		return false
	}
	item, err := ctx.World.TakeItem(name)
	if err != nil {
		ctx.Player.Output.Push(game.Ansi(game.Style(err.Error(), game.AnsiYellow)))
		return false
	}
	if shown, text := ctx.World.Router().Submit(
		fmt.Sprintf("You pick up the %s.", item.Name),
		game.WithCategory(game.CategoryPlayerAction),
	); shown {
		ctx.Player.Output.Push(game.Ansi(text))
	}
	return false
})
