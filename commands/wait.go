package commands

import "VineRow/internal/game"

var Wait = Define(Definition{
	Name:         "wait",
	Aliases:      []string{"z"},
	Usage:        "wait",
	Description:  "let a turn pass",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	ctx.Player.Output.Push(game.Ansi(game.Style("You watch the street for a while.", game.AnsiDim)))
	return false
})
