package textstats

type LetterCount struct {
	Letter byte
	Count  int
}

type WordCount struct {
	Word  string
	Count int
}

// Analysis is the full set of statistics computed over one text snapshot.
// TopLetters and TopWords are sorted by descending count; ties rank by first
// occurrence in the normalized text.
type Analysis struct {
	TopLetters     []LetterCount
	TopWords       []WordCount
	UniqueWords    int
	LinesWithWords int
}

type Analyzer interface {
	Analyze(content string) *Analysis
}
