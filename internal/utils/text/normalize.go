package text

import (
	"regexp"
	"strings"
)

var (
	carriageReturns = regexp.MustCompile(`\r\n?`)
	newlineRuns     = regexp.MustCompile(`\n{2,}`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	paragraphBreaks = regexp.MustCompile(`\n+`)
)

// Normalize collapses an extracted document into a canonical single-line
// form: carriage returns become newlines, runs of blank lines collapse to
// one, and finally every remaining whitespace run collapses to a single
// space. Leading and trailing whitespace is trimmed.
//
// The output contains no carriage returns and no run of two or more
// spaces. Empty input yields an empty string, which the pipeline treats as
// "no text extracted".
func Normalize(text string) string {
	text = carriageReturns.ReplaceAllString(text, "\n")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Paragraphs splits raw extracted text into paragraphs on newline-run
// boundaries. It must run on the raw (pre-Normalize) text: Normalize folds
// newlines into spaces, which would destroy the paragraph boundaries the
// clause classifier depends on. Each returned paragraph is itself
// whitespace-collapsed and trimmed; empty paragraphs are dropped.
func Paragraphs(text string) []string {
	text = carriageReturns.ReplaceAllString(text, "\n")

	var paragraphs []string
	for _, p := range paragraphBreaks.Split(text, -1) {
		p = strings.TrimSpace(whitespaceRuns.ReplaceAllString(p, " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
