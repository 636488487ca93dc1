package textstats

import (
	"sort"
	"strings"
	"unicode"

	"textstat/internal/domain/config"

	"go.uber.org/zap"
)

type StatsRepo struct {
	Logger   *zap.SugaredLogger
	Settings config.Analysis
}

func NewStatsRepo(logger *zap.SugaredLogger, settings config.Analysis) *StatsRepo {
	return &StatsRepo{
		Logger:   logger,
		Settings: settings,
	}
}

// Analyze computes letter and word statistics over content. It is pure and
// total: any input, including empty or whitespace-only text, yields a valid
// (possibly empty) Analysis.
func (repo *StatsRepo) Analyze(content string) *Analysis {
	normalized := Normalize(content)
	words := strings.Fields(normalized)

	analysis := &Analysis{
		TopLetters:     repo.topLetters(normalized),
		TopWords:       repo.topWords(words),
		UniqueWords:    countUnique(words),
		LinesWithWords: countLinesWithWords(normalized),
	}

	repo.Logger.Debugw("analyzed content",
		"bytes", len(content),
		"normalizedBytes", len(normalized),
		"words", len(words),
		"uniqueWords", analysis.UniqueWords,
	)

	return analysis
}

// Normalize deletes every rune that is neither an ASCII letter nor
// whitespace, then lowercases. Deletion is literal: "don't" becomes "dont",
// no separator is left behind.
func Normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	for _, r := range content {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	return b.String()
}

func (repo *StatsRepo) topLetters(normalized string) []LetterCount {
	counter := newOrderedCounter()

	for i := 0; i < len(normalized); i++ {
		ch := normalized[i]
		if ch >= 'a' && ch <= 'z' {
			counter.add(string(ch))
		}
	}

	top := make([]LetterCount, 0, repo.Settings.TopN)
	for _, key := range counter.ranked(repo.Settings.TopN) {
		top = append(top, LetterCount{Letter: key[0], Count: counter.counts[key]})
	}

	return top
}

func (repo *StatsRepo) topWords(words []string) []WordCount {
	counter := newOrderedCounter()

	for _, word := range words {
		counter.add(word)
	}

	top := make([]WordCount, 0, repo.Settings.TopN)
	for _, key := range counter.ranked(repo.Settings.TopN) {
		top = append(top, WordCount{Word: key, Count: counter.counts[key]})
	}

	return top
}

func countUnique(words []string) int {
	distinct := make(map[string]struct{}, len(words))
	for _, word := range words {
		distinct[word] = struct{}{}
	}
	return len(distinct)
}

func countLinesWithWords(normalized string) int {
	if normalized == "" {
		return 0
	}

	count := 0
	for _, line := range strings.Split(normalized, "\n") {
		if strings.ContainsFunc(line, isLetter) {
			count++
		}
	}

	return count
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// orderedCounter counts keys while remembering first-encounter order, which
// decides ties when ranking.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: map[string]int{}}
}

func (c *orderedCounter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns up to n keys sorted by descending count. The stable sort
// over encounter order keeps earlier-seen keys ahead on equal counts.
func (c *orderedCounter) ranked(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)

	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})

	if len(keys) > n {
		keys = keys[:n]
	}

	return keys
}
