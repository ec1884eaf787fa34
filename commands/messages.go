package commands

import (
	"fmt"
	"strings"

	"VineRow/internal/game"
)

var Messages = Define(Definition{
	Name:        "messages",
	Aliases:     []string{"msgstats"},
	Usage:       "messages",
	Description: "show per-category message statistics",
}, func(ctx *Context) bool {
	router := ctx.World.Router()
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Turn %d message traffic:", ctx.World.Clock().Current()))
	for _, category := range game.AllCategories() {
		lifetime := router.LifetimeCount(category)
		if lifetime == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf(
			"\n  %-16s lifetime %-4d buffered %d",
			category, lifetime, router.BufferedCount(category),
		))
	}
	ctx.Player.Output.Push(game.Ansi(builder.String()))
	return false
})
