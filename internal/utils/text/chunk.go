package text

import "strings"

// Chunk greedily packs sentences into chunks of at most maxWords
// whitespace-delimited tokens. Sentences are never split: when adding the
// next sentence would exceed the budget, the current chunk is closed
// (sentences joined with single spaces) and a new chunk starts with that
// sentence. A single sentence that alone exceeds maxWords is emitted as
// its own oversized chunk; that is deliberate policy, not an overflow bug.
//
// An empty sentence slice yields an empty chunk slice. Concatenating the
// returned chunks in order reproduces the input sentence sequence.
func Chunk(sentences []string, maxWords int) []string {
	var chunks []string
	var current []string
	currentWords := 0

	for _, sentence := range sentences {
		words := CountWords(sentence)
		if currentWords+words <= maxWords {
			current = append(current, sentence)
			currentWords += words
			continue
		}
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
		}
		current = []string{sentence}
		currentWords = words
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
