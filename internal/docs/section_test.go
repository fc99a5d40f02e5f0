package docs

import (
	"reflect"
	"testing"
)

func TestExtractSections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Section
	}{
		{
			name:  "two sections with bodies",
			input: "# Intro\nWelcome to the course.\n\n## Setup\nInstall the CLI first.",
			want: []Section{
				{Title: "Intro", HeadingID: "intro", Level: 1, Content: "Welcome to the course."},
				{Title: "Setup", HeadingID: "setup", Level: 2, Content: "Install the CLI first."},
			},
		},
		{
			name:  "adjacent headings drop the empty one",
			input: "# Empty\n## Filled\nbody text",
			want: []Section{
				{Title: "Filled", HeadingID: "filled", Level: 2, Content: "body text"},
			},
		},
		{
			name:  "trailing heading with no body is dropped",
			input: "# Filled\nbody text\n# Trailing",
			want: []Section{
				{Title: "Filled", HeadingID: "filled", Level: 1, Content: "body text"},
			},
		},
		{
			name:  "whitespace-only body is dropped",
			input: "# Blank\n   \n\t\n# Real\ncontent",
			want: []Section{
				{Title: "Real", HeadingID: "real", Level: 1, Content: "content"},
			},
		},
		{
			name:  "no headings yields nothing",
			input: "Just plain text.\nNo headings anywhere.",
			want:  nil,
		},
		{
			name:  "text before first heading is ignored",
			input: "preamble outside any section\n# First\nreal body",
			want: []Section{
				{Title: "First", HeadingID: "first", Level: 1, Content: "real body"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSections(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSections() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantTitle string
		wantOK    bool
	}{
		{"# Title", 1, "Title", true},
		{"###### Deep", 6, "Deep", true},
		{"  ## Indented", 2, "Indented", true},
		{"##   Padded title  ", 2, "Padded title", true},
		{"#", 1, "", true},
		{"####### Too deep", 0, "", false},
		{"#NoSpace", 0, "", false},
		{"plain text", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		level, title, ok := parseHeading(tt.line)
		if level != tt.wantLevel || title != tt.wantTitle || ok != tt.wantOK {
			t.Errorf("parseHeading(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.line, level, title, ok, tt.wantLevel, tt.wantTitle, tt.wantOK)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Already-hyphen-ated", "already-hyphen-ated"},
		{"What is a PDA?", "what-is-a-pda"},
		{"Week 1: Getting Started", "week-1-getting-started"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	titles := []string{"Getting Started", "What is a PDA?", "週次計畫"}
	for _, title := range titles {
		first := Slugify(title)
		for i := 0; i < 10; i++ {
			if got := Slugify(title); got != first {
				t.Fatalf("Slugify(%q) not stable: %q vs %q", title, first, got)
			}
		}
	}
}
