package utils

import "unicode"

// SplitText splits a long string into chunks of at most chunkSize runes,
// repeating 'overlap' runes across boundaries to preserve context. Chunks
// prefer to break on whitespace so words stay intact, falling back to a
// hard cut when the back half of the window has none.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}
	if overlap >= chunkSize {
		overlap = 0
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		cut := end
		for i := end; i > start+chunkSize/2; i-- {
			if unicode.IsSpace(runes[i-1]) {
				cut = i
				break
			}
		}

		chunks = append(chunks, string(runes[start:cut]))

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}
