// Package text provides utilities for text normalization, sentence
// segmentation, and chunking. These are reusable building blocks shared by
// the analysis pipeline and the summarization providers.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Counting runes instead of bytes keeps the result correct for
// multi-byte characters.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-delimited tokens in the given text.
// This is the word measure used everywhere in the pipeline: chunk budgets,
// truncation fallback, and the reading-time estimate all count words the
// same way so their invariants compose.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
