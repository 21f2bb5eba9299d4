package encoding

import (
	"regexp"
	"strings"
)

const noStyles = "0 /* no styles */"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Styles encodes mode styles as a concatenation of single-quoted line
// literals, each ending in an escaped newline:
//
//	'a {\n' +
//	'}\n'
//
// Single quotes inside the styles are replaced with double quotes so each
// line stays a valid literal. That substitution is lossy: styles containing
// single quotes do not come back byte for byte.
func Styles(styles string) string {
	if styles == "" {
		return noStyles
	}

	lines := lineBreak.Split(styles, -1)
	for i, line := range lines {
		lines[i] = "'" + strings.ReplaceAll(line, "'", `"`) + `\n'`
	}
	return strings.Join(lines, " + \n")
}
