package text

import (
	"regexp"
	"strings"
)

// SentenceSplitter segments text into an ordered sequence of sentences.
// Implementations must be deterministic; the chunker relies on the fact
// that concatenating the returned sentences reproduces the input word
// sequence with nothing lost, duplicated, or reordered.
type SentenceSplitter interface {
	Split(text string) []string
}

// sentenceBoundary matches a run of terminator punctuation, optionally
// followed by closing quotes or brackets, then whitespace. The whitespace
// requirement keeps decimals ("2.5") and most abbreviations intact more
// often than a bare [.!?] split would.
var sentenceBoundary = regexp.MustCompile(`[.!?]+["')\]]*\s+`)

// RegexSplitter is a heuristic sentence splitter driven by terminator
// punctuation. It is not locale-aware in the linguistic sense, but it is
// deterministic, dependency-free, and good enough for contractual prose
// where sentences end with ordinary punctuation.
type RegexSplitter struct{}

// Split segments text into sentences. Empty or blank input yields nil.
func (RegexSplitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	rest := text
	for {
		loc := sentenceBoundary.FindStringIndex(rest)
		if loc == nil {
			break
		}
		sentences = append(sentences, strings.TrimSpace(rest[:loc[1]]))
		rest = rest[loc[1]:]
	}
	if tail := strings.TrimSpace(rest); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
