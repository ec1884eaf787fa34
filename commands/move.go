package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Go = Define(Definition{
	Name:         "go",
	Usage:        "go <direction>",
	Description:  "walk through an exit of the current room",
	ConsumesTurn: true,
}, func(ctx *Context) bool {
	return moveDir(ctx, ctx.Arg)
})

var North = Define(Definition{
	Name:         "north",
	Aliases:      []string{"n"},
	Usage:        "north",
	Description:  "walk north",
	ConsumesTurn: true,
}, func(ctx *Context) bool { return moveDir(ctx, "north") })

var South = Define(Definition{
	Name:         "south",
	Aliases:      []string{"s"},
	Usage:        "south",
	Description:  "walk south",
	ConsumesTurn: true,
}, func(ctx *Context) bool { return moveDir(ctx, "south") })

var East = Define(Definition{
	Name:         "east",
	Aliases:      []string{"e"},
	Usage:        "east",
	Description:  "walk east",
	ConsumesTurn: true,
}, func(ctx *Context) bool { return moveDir(ctx, "east") })

var West = Define(Definition{
	Name:         "west",
	Aliases:      []string{"w"},
	Usage:        "west",
	Description:  "walk west",
	ConsumesTurn: true,
}, func(ctx *Context) bool { return moveDir(ctx, "west") })

func moveDir(ctx *Context, dir string) bool {
	dir = strings.ToLower(strings.TrimSpace(dir))
	if dir == "" {
		ctx.Player.Output.Push(game.Ansi("Go where?"))
		return false
	}
	if _, err := ctx.World.Move(dir); err != nil {
		ctx.Player.Output.Push(game.Ansi(game.Style(err.Error(), game.AnsiYellow)))
		return false
	}
	if shown, text := ctx.World.Router().Submit(
		fmt.Sprintf("You head %s.", dir),
		game.WithCategory(game.CategoryPlayerAction),
	); shown {
		ctx.Player.Output.Push(game.Ansi(text))
	}
	for _, line := range ctx.World.DescribeRoom(ctx.Player.Room, Width) {
		ctx.Player.Output.Push(game.Ansi(line))
	}
	return false
}
