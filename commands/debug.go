package commands

import (
	"errors"
	"strings"

	"VineRow/internal/game"
)

var Debug = Define(Definition{
	Name:        "debug",
	Usage:       "debug <wizard password>",
	Description: "toggle visibility of debug-category messages",
}, func(ctx *Context) bool {
	router := ctx.World.Router()
	if router.DebugEnabled() {
		router.SetDebug(false)
		ctx.Player.Output.Push(game.Ansi("Debug messages hidden."))
		return false
	}

	password := strings.TrimSpace(ctx.Arg)
	if password == "" {
		ctx.Player.Output.Push(game.Ansi("Usage: " + ctx.Command.Usage))
		return false
	}
	err := ctx.World.DebugGate().Unlock(password)
	switch {
	case errors.Is(err, game.ErrDebugLocked):
		ctx.Player.Output.Push(game.Ansi(game.Style("The debug gate has sealed itself.", game.AnsiYellow)))
	case err != nil:
		ctx.Player.Output.Push(game.Ansi(game.Style("That is not the wizard's word.", game.AnsiYellow)))
	default:
		router.SetDebug(true)
		ctx.Player.Output.Push(game.Ansi(game.Style("Debug messages visible.", game.AnsiGreen)))
	}
	return false
})
