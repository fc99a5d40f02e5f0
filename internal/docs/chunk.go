package docs

import "strings"

// overlapWordCount is how many trailing words of a sealed chunk are carried
// into the next one. Roughly ChunkOverlap characters at average word length.
const overlapWordCount = ChunkOverlap / 6

// Chunk splits normalized text into pieces of at most roughly MaxChunkSize
// characters, accumulating whole sentences greedily. Consecutive chunks share
// an overlap of trailing words so that context spanning a chunk boundary is
// retrievable from either side. Pieces shorter than MinChunkLength are
// dropped. Text at or under MaxChunkSize comes back as a single chunk.
func Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= MaxChunkSize {
		if len(text) < MinChunkLength {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	var carry string

	seal := func() {
		chunk := strings.TrimSpace(current.String())
		current.Reset()
		if chunk == "" {
			return
		}
		if len(chunk) >= MinChunkLength {
			chunks = append(chunks, chunk)
		}
		carry = trailingWords(chunk, overlapWordCount)
	}

	for _, sentence := range splitSentences(text) {
		if current.Len() > 0 && current.Len()+1+len(sentence) > MaxChunkSize {
			seal()
		}
		if current.Len() == 0 && carry != "" {
			current.WriteString(carry)
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	seal()

	return chunks
}

// splitSentences cuts text after runs of sentence-ending punctuation that are
// followed by whitespace or end of input. Punctuation inside a token, like a
// version number or domain name, does not end a sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isSentenceEnd(text[i]) {
			continue
		}
		end := i + 1
		for end < len(text) && isSentenceEnd(text[end]) {
			end++
		}
		if end < len(text) && text[end] != ' ' && text[end] != '\n' && text[end] != '\t' {
			i = end - 1
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func trailingWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
