package usecase

import (
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`[\s\p{Z}\x{FEFF}\v]+`)

	quoteReplacer = strings.NewReplacer(
		"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
		"‘", "'", "’", "'", "‚", "'", "‛", "'",
	)
)

// Preprocess strips markup tags, collapses whitespace runs to one space, trims
// and straightens curly quotes. Preprocess(Preprocess(s)) == Preprocess(s).
func Preprocess(raw string) string {
	s := tagRe.ReplaceAllString(raw, "")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	return quoteReplacer.Replace(s)
}
