package utils

import "strings"

// Excerpt truncates text to at most maxLen runes, breaking at a word
// boundary when one falls close enough to the limit.
func Excerpt(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := runes[:maxLen]

	// Only back up to a space if it keeps most of the excerpt. The position
	// is compared in runes so multibyte text is not trimmed early.
	for i := len(cut) - 1; i > maxLen*3/4; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}

	return strings.TrimRight(string(cut), " \n\t") + "…"
}

// FirstLine returns the first non-empty line of text, used as a title
// fallback for untitled notes.
func FirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
