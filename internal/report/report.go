package report

import (
	"fmt"
	"strings"

	"textstat/internal/textstats"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Render builds the human-readable statistics report: letters uppercased,
// words title-cased, followed by the aggregate counts.
func Render(analysis *textstats.Analysis) string {
	caser := cases.Title(language.English)

	var b strings.Builder

	b.WriteString("Top letters:\n")
	for _, lc := range analysis.TopLetters {
		fmt.Fprintf(&b, "  %s: %d\n", strings.ToUpper(string(lc.Letter)), lc.Count)
	}

	b.WriteString("Top words:\n")
	for _, wc := range analysis.TopWords {
		fmt.Fprintf(&b, "  %s: %d\n", caser.String(wc.Word), wc.Count)
	}

	fmt.Fprintf(&b, "Unique words: %d\n", analysis.UniqueWords)
	fmt.Fprintf(&b, "Lines with words: %d\n", analysis.LinesWithWords)

	return b.String()
}
