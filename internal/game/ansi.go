package game

import "strings"

const (
	AnsiReset   = "\x1b[0m"
	AnsiBold    = "\x1b[1m"
	AnsiDim     = "\x1b[2m"
	AnsiItalic  = "\x1b[3m"
	AnsiCyan    = "\x1b[36m"
	AnsiYellow  = "\x1b[33m"
	AnsiGreen   = "\x1b[32m"
	AnsiMagenta = "\x1b[35m"
)

// Style wraps text with the provided ANSI attributes.
func Style(text string, attrs ...string) string {
	if len(attrs) == 0 {
		return text
	}
	return strings.Join(attrs, "") + text + AnsiReset
}

// HighlightName formats the player's name consistently.
func HighlightName(name string) string {
	return Style(name, AnsiBold, AnsiCyan)
}

// HighlightNPCName formats NPC names consistently.
func HighlightNPCName(name string) string {
	return Style(name, AnsiBold, AnsiMagenta)
}

// HighlightItemName formats item names consistently.
func HighlightItemName(name string) string {
	return Style(name, AnsiBold, AnsiGreen)
}

// Ansi ensures output strings end with a reset sequence.
func Ansi(c string) string {
	if strings.Contains(c, "\x1b[") && !strings.HasSuffix(c, AnsiReset) {
		return c + AnsiReset
	}
	return c
}
