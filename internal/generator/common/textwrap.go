package common

import "strings"

// Wrap reflows text to the given width, prefixing the first line with
// initialIndent and following lines with subsequentIndent. Runs of
// whitespace collapse to single spaces before wrapping; words longer than
// the width are kept intact.
func Wrap(text string, width int, initialIndent, subsequentIndent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return initialIndent
	}

	var lines []string
	current := initialIndent + words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = subsequentIndent + word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}
