package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Help = Define(Definition{
	Name:        "help",
	Aliases:     []string{"?"},
	Usage:       "help [command]",
	Description: "list commands or show one command's usage",
}, func(ctx *Context) bool {
	target := strings.TrimSpace(ctx.Arg)
	if target != "" {
		cmd, ok := Lookup(target)
		if !ok {
			ctx.Player.Output.Push(game.Ansi("No such command."))
			return false
		}
		ctx.Player.Output.Push(game.Ansi(fmt.Sprintf("%s — %s", cmd.Usage, cmd.Description)))
		return false
	}

	var builder strings.Builder
	builder.WriteString("Commands:")
	for _, cmd := range All() {
		builder.WriteString(fmt.Sprintf("\n  %-14s %s", cmd.Name, cmd.Description))
	}
	ctx.Player.Output.Push(game.Ansi(builder.String()))
	return false
})
