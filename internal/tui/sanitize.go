package tui

import "strings"

// Sanitize neutralizes free text before it is rendered: terminal escape
// sequences and control characters are stripped so user input or backend
// responses cannot inject styling, cursor movement, or title changes.
// Printable text passes through untouched, so markup like "<script>"
// renders as the literal characters.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 0x1b { // ESC
			i = skipEscapeSequence(runes, i)
			continue
		}
		if r < 0x20 && r != '\n' && r != '\t' {
			continue
		}
		if r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// skipEscapeSequence returns the index of the last rune of the escape
// sequence starting at i, so the caller's loop increment moves past it.
func skipEscapeSequence(runes []rune, i int) int {
	if i+1 >= len(runes) {
		return i
	}

	switch runes[i+1] {
	case '[': // CSI: parameters then a final byte in 0x40..0x7E
		j := i + 2
		for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
			j++
		}
		return j
	case ']': // OSC: terminated by BEL or ESC \
		j := i + 2
		for j < len(runes) {
			if runes[j] == 0x07 {
				return j
			}
			if runes[j] == 0x1b && j+1 < len(runes) && runes[j+1] == '\\' {
				return j + 1
			}
			j++
		}
		return j
	default: // two-character escape
		return i + 1
	}
}

// SanitizeAll maps Sanitize over a list, for skill tags and feedback items.
func SanitizeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = Sanitize(s)
	}
	return out
}
