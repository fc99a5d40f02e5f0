package docs

import (
	"regexp"
	"strings"
)

// Section is a heading-delimited region of a document.
type Section struct {
	Title     string // Heading text, markers stripped
	HeadingID string // Slug anchor for deep links (see Slugify)
	Level     int    // 1-6, the heading's #-count
	Content   string // Raw body between this heading and the next
}

// ExtractSections splits raw markdown text into heading-delimited sections.
//
// A line matching `#` through `######` starts a new section; the accumulated
// body of the previous section is flushed, trimmed, only if non-empty. A
// heading immediately followed by another heading therefore produces no
// section for the first heading. That drop is deliberate and pinned by tests;
// do not "fix" it without changing the ingestion contract.
//
// A document with zero headings yields an empty slice; callers fall back to
// treating the whole document as one implicit chunk with no heading context.
func ExtractSections(text string) []Section {
	lines := strings.Split(text, "\n")

	var sections []Section
	var current *Section
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content != "" {
			current.Content = content
			sections = append(sections, *current)
		}
		current = nil
		body = nil
	}

	for _, line := range lines {
		level, title, ok := parseHeading(line)
		if ok {
			flush()
			current = &Section{
				Title:     title,
				HeadingID: Slugify(title),
				Level:     level,
			}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// parseHeading reports whether line is an ATX markdown heading, returning
// its level (1-6) and title text.
func parseHeading(line string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	if len(trimmed) > level && trimmed[level] != ' ' {
		return 0, "", false
	}
	title := strings.TrimSpace(trimmed[level:])
	return level, title, true
}

var (
	slugStripRe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugHyphenRe = regexp.MustCompile(`[\s-]+`)
)

// Slugify converts a heading title into a stable anchor id: lowercase,
// non-alphanumerics stripped, whitespace collapsed to single hyphens, no
// leading or trailing hyphens. Pure and deterministic.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
