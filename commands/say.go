package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Say = Define(Definition{
	Name:         "say",
	Usage:        "say <message>",
	Description:  "say something out loud",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	message := strings.TrimSpace(ctx.Arg)
	if message == "" {
		ctx.Player.Output.Push(game.Ansi("Say what?"))
		return false
	}
	if shown, text := ctx.World.Router().Submit(
		fmt.Sprintf("You say, \"%s\"", message),
		game.WithCategory(game.CategoryPlayerAction),
	); shown {
		ctx.Player.Output.Push(game.Ansi(text))
	}
	return false
})
