package commands

import "VineRow/internal/game"

var Quit = Define(Definition{
	Name:        "quit",
	Aliases:     []string{"exit"},
	Usage:       "quit",
	Description: "leave the neighborhood",
}, func(ctx *Context) bool {
	ctx.Player.Output.Push(game.Ansi("The street forgets you almost immediately."))
	return true
})
