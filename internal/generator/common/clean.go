package common

import "strings"

// CleanAndTrim normalizes rendered template output: trailing spaces are
// stripped per line, runs of more than two blank lines collapse to two, and
// the result ends with exactly one newline.
func CleanAndTrim(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}
