package generator

import "strings"

// bashEscaper rewrites a string for embedding in a bash $'...' literal.
// Backslash doubling must not reprocess the backslashes introduced for
// newlines and apostrophes; Replacer's single left-to-right pass gives the
// same result as doubling backslashes first.
var bashEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`'`, `\'`,
)

// quote returns s as a bash ANSI-C quoted literal. Evaluating the literal
// yields back exactly s, so the encode round-trips through the shell.
func quote(s string) string {
	return "$'" + bashEscaper.Replace(s) + "'"
}
