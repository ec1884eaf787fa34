package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"VineRow/commands"
	"VineRow/internal/game"
)

const introBanner = "VINE ROW\nThe lot gardens are yours to tend, if the street lets you."

func main() {
	seed := flag.Int64("seed", 0, "Seed for the simulation's random draws (0 uses the clock)")
	wizard := flag.String("wizard", "compost-king", "Wizard password guarding the debug command")
	reminder := flag.Int("reminder", 0, "Unread-notification reminder cadence in turns (0 disables)")
	capacity := flag.Int("inbox", game.DefaultInboxCapacity, "Notification inbox capacity")
	latin1 := flag.Bool("latin1", false, "Transcode output to Latin-1 for legacy terminals")
	flag.Parse()

	opts := []game.WorldOption{
		game.WithWizardPassword(*wizard),
		game.WithReminderCadence(*reminder),
		game.WithInboxCapacity(*capacity),
	}
	if *seed != 0 {
		opts = append(opts, game.WithWorldSeed(*seed))
	}
	world, err := game.NewWorld(opts...)
	if err != nil {
		log.Fatal(err)
	}

	write := func(text string) {
		if *latin1 {
			os.Stdout.Write(game.EncodeLatin1(text))
			return
		}
		fmt.Print(text)
	}
	writeLine := func(line string) {
		write(line + "\n")
	}

	player := world.Player()
	writeLine(game.Ansi(game.Style(introBanner, game.AnsiBold, game.AnsiGreen)))
	for _, line := range world.DescribeRoom(player.Room, commands.Width) {
		writeLine(line)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		write(game.Prompt(world.Inbox().UnreadCount()))
		if !scanner.Scan() {
			break
		}
		line := game.Trim(scanner.Text())
		quit, turn := commands.Dispatch(world, player, line)
		for _, out := range player.Output.Drain() {
			writeLine(out)
		}
		if quit {
			break
		}
		if turn {
			for _, out := range world.Tick() {
				writeLine(out)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
