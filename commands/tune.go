package commands

import (
	"fmt"
	"strconv"
	"strings"

	"VineRow/internal/game"
)

var Tune = Define(Definition{
	Name:        "tune",
	Usage:       "tune <category> <show|notify|throttle|cooldown|importance> <value>",
	Description: "adjust a category's message policy at runtime",
}, func(ctx *Context) bool {
	fields := strings.Fields(ctx.Arg)
	if len(fields) != 3 {
		ctx.Player.Output.Push(game.Ansi("Usage: " + ctx.Command.Usage))
		return false
	}
	category, ok := game.CategoryFromString(fields[0])
	if !ok {
		ctx.Player.Output.Push(game.Ansi(game.Style("Unknown category: "+fields[0], game.AnsiYellow)))
		return false
	}

	var patch game.CategoryPatch
	field, value := strings.ToLower(fields[1]), fields[2]
	switch field {
	case "show":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			ctx.Player.Output.Push(game.Ansi(game.Style("show wants true or false", game.AnsiYellow)))
			return false
		}
		patch.DirectShow = &enabled
	case "notify":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			ctx.Player.Output.Push(game.Ansi(game.Style("notify wants true or false", game.AnsiYellow)))
			return false
		}
		patch.NotifyInbox = &enabled
	case "throttle":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 || rate > 1 {
			ctx.Player.Output.Push(game.Ansi(game.Style("throttle wants a rate between 0 and 1", game.AnsiYellow)))
			return false
		}
		patch.ThrottleRate = &rate
	case "cooldown":
		turns, err := strconv.Atoi(value)
		if err != nil || turns < 0 {
			ctx.Player.Output.Push(game.Ansi(game.Style("cooldown wants a turn count", game.AnsiYellow)))
			return false
		}
		patch.CooldownTurns = &turns
	case "importance":
		importance, err := strconv.Atoi(value)
		if err != nil || importance < 1 || importance > 5 {
			ctx.Player.Output.Push(game.Ansi(game.Style("importance wants 1 through 5", game.AnsiYellow)))
			return false
		}
		patch.Importance = &importance
	default:
		ctx.Player.Output.Push(game.Ansi(game.Style("Unknown field: "+field, game.AnsiYellow)))
		return false
	}

	ctx.World.Registry().Patch(category, patch)
	ctx.Player.Output.Push(game.Ansi(fmt.Sprintf("Updated %s %s to %s.", category, field, value)))
	return false
})
