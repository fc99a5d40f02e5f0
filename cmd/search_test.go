package cmd

import (
	"strings"
	"testing"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short passthrough", "fits easily", 50, "fits easily"},
		{"whitespace collapsed", "a\n b\t c", 50, "a b c"},
		{"cut on word boundary", "one two three four five", 14, "one two three…"},
		{"no boundary inside limit", "abcdefghij klm", 5, "abcde…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := excerpt(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("excerpt(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
			if len(got) > tt.limit+len("…") {
				t.Errorf("excerpt too long: %d", len(got))
			}
		})
	}
}

func TestRootCommandWiring(t *testing.T) {
	want := map[string]bool{"ingest": false, "search": false, "migrate": false, "version": false}
	for _, c := range rootCmd.Commands() {
		name := strings.Fields(c.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
