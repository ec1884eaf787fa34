package game

import "strings"

// WrapText inserts soft line breaks so every line fits within the column
// width. Paragraph breaks are preserved and a floor is applied so absurdly
// narrow widths do not shred the text.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if width < 20 {
		width = 20
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapLine(trimmed, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	var builder strings.Builder
	current := 0
	for _, word := range strings.Fields(line) {
		runes := []rune(word)
		// Hard-split words longer than the full width.
		for len(runes) > width {
			if current > 0 {
				builder.WriteByte('\n')
				current = 0
			}
			builder.WriteString(string(runes[:width]))
			builder.WriteByte('\n')
			runes = runes[width:]
		}
		length := len(runes)
		switch {
		case current == 0:
			builder.WriteString(string(runes))
			current = length
		case current+1+length > width:
			builder.WriteByte('\n')
			builder.WriteString(string(runes))
			current = length
		default:
			builder.WriteByte(' ')
			builder.WriteString(string(runes))
			current += 1 + length
		}
	}
	return builder.String()
}

// Trim normalises an input line from the console.
func Trim(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
}
