package docs

import (
	"strings"
	"testing"
)

func TestChunkShortText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"below minimum dropped", "too short to keep", nil},
		{
			"single chunk passthrough",
			strings.Repeat("solana accounts hold lamports. ", 5),
			[]string{strings.TrimSpace(strings.Repeat("solana accounts hold lamports. ", 5))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunk(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Chunk() returned %d chunks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChunkLongSection(t *testing.T) {
	// 48 sentences of 72 characters: roughly 3500 characters of
	// normalized text, the canonical long-section shape.
	sentence := strings.Repeat("lorem ", 11) + "ipsum."
	text := strings.Repeat(sentence+" ", 48)

	chunks := Chunk(text)
	if len(chunks) != 4 {
		t.Fatalf("Chunk() returned %d chunks, want 4", len(chunks))
	}

	for i, c := range chunks {
		if len(c) < MinChunkLength {
			t.Errorf("chunk %d shorter than minimum: %d", i, len(c))
		}
		// Size bound: MaxChunkSize plus at most one overlap carry.
		if len(c) > MaxChunkSize+ChunkOverlap+overlapWordCount {
			t.Errorf("chunk %d too long: %d", i, len(c))
		}
	}

	// Each chunk after the first starts with the tail words of the
	// previous chunk.
	for i := 1; i < len(chunks); i++ {
		carry := trailingWords(chunks[i-1], overlapWordCount)
		if !strings.HasPrefix(chunks[i], carry) {
			t.Errorf("chunk %d does not start with previous tail:\n carry: %q\n chunk: %q",
				i, carry, chunks[i][:min(len(chunks[i]), 120)])
		}
	}
}

func TestChunkOversizedSentence(t *testing.T) {
	// A single sentence longer than MaxChunkSize forms its own oversized
	// chunk rather than being cut mid-sentence.
	giant := strings.Repeat("lorem ", 250) + "ipsum."
	text := giant + " Short follow-up sentence to force a second chunk to appear here."

	chunks := Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if !strings.HasPrefix(chunks[0], "lorem") || len(chunks[0]) <= MaxChunkSize {
		t.Errorf("oversized sentence was split: first chunk length %d", len(chunks[0]))
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{
			"First sentence. Second one! Third?",
			[]string{"First sentence.", "Second one!", "Third?"},
		},
		{
			"Version 1.5 is out. Use it.",
			[]string{"Version 1.5 is out.", "Use it."},
		},
		{
			"Really?! Yes... done.",
			[]string{"Really?!", "Yes...", "done."},
		},
		{
			"no terminal punctuation",
			[]string{"no terminal punctuation"},
		},
	}

	for _, tt := range tests {
		got := splitSentences(tt.input)
		if len(got) != len(tt.want) {
			t.Fatalf("splitSentences(%q) = %v, want %v", tt.input, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
			}
		}
	}
}
