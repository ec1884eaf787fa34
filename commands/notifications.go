package commands

import (
	"strconv"
	"strings"

	"VineRow/internal/game"
)

var Notifications = Define(Definition{
	Name:        "notifications",
	Aliases:     []string{"notif", "inbox"},
	Usage:       "notifications [clear | [bucket] [count]]",
	Description: "read, filter, or clear your notification inbox",
}, func(ctx *Context) bool {
	inbox := ctx.World.Inbox()
	fields := strings.Fields(strings.ToLower(ctx.Arg))

	if len(fields) > 0 && fields[0] == "clear" {
		inbox.Clear()
		ctx.Player.Output.Push(game.Ansi("All notifications cleared."))
		return false
	}

	count := 0
	bucket := ""
	for _, field := range fields {
		if n, err := strconv.Atoi(field); err == nil {
			count = n
			continue
		}
		bucket = field
	}

	text, remaining := inbox.Read(count, bucket)
	ctx.Player.Output.Push(game.Ansi(text))
	if remaining > 0 {
		ctx.Player.Output.Push(game.Ansi(game.Style(
			"Unread notifications remain. Type 'notifications' to see the rest.",
			game.AnsiDim,
		)))
	}
	return false
})
