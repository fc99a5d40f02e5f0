package docs

import (
	"regexp"
	"strings"
)

// CodeMarker replaces fenced code blocks in normalized text. Code is not
// embedded verbatim because syntax noise dominates the vector; the marker
// keeps the fact that an example existed at that point.
const CodeMarker = "[CODE_EXAMPLE]"

// Normalization rules, applied in order. Later rules assume earlier ones
// already ran (e.g. the link rewrite sees brace-free text).
var (
	importLineRe = regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\b.*$`)

	calloutOpenRe  = regexp.MustCompile(`<Callout(\s[^>]*)?>`)
	calloutCloseRe = regexp.MustCompile(`</Callout>`)
	stepsTagRe     = regexp.MustCompile(`</?Steps(\s[^>]*)?>`)
	stepOpenRe     = regexp.MustCompile(`<Step(\s[^>]*)?>`)
	stepCloseRe    = regexp.MustCompile(`</Step>`)
	tabsTagRe      = regexp.MustCompile(`</?Tabs(\s[^>]*)?>`)
	tabTagRe       = regexp.MustCompile(`</?Tab(\s[^>]*)?>`)
	accordionTagRe = regexp.MustCompile(`</?Accordion(\s[^>]*)?>`)
	anyTagRe       = regexp.MustCompile(`<[^>]+>`)
	braceRe        = regexp.MustCompile(`\{[^{}]*\}`)
	fenceRe        = regexp.MustCompile("(?s)```.*?```")
	boldRe         = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderRe    = regexp.MustCompile(`__([^_]+)__`)
	italicRe       = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderRe  = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	imageRe        = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	bulletRe       = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedRe      = regexp.MustCompile(`(?m)^[ \t]*(\d+)[.)][ \t]+`)
	newlinePadRe   = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	horizontalWSRe = regexp.MustCompile(`[ \t]+`)
)

// Normalize converts a section's raw MDX/markdown body into plain prose
// suitable for embedding. The result is deterministic and idempotent:
// Normalize(Normalize(s)) == Normalize(s), a property pinned by fuzz tests.
//
// Idempotency comes from iterating the rule pass to a fixpoint: one pass
// can expose new matches (stripping emphasis may leave a line starting
// with "import"), so the pass repeats until the text stops changing. Every
// pass strictly consumes markup, so the loop terminates.
func Normalize(text string) string {
	for {
		next := normalizeOnce(text)
		if next == text {
			return text
		}
		text = next
	}
}

func normalizeOnce(text string) string {
	// Normalize line endings first so line-anchored rules behave.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 1. Drop JS-module import/export declaration lines.
	text = importLineRe.ReplaceAllString(text, "")

	// 2. Unwrap known callout-like wrappers, preserving semantic intent.
	text = calloutOpenRe.ReplaceAllString(text, "Important: ")
	text = calloutCloseRe.ReplaceAllString(text, "")
	text = stepsTagRe.ReplaceAllString(text, "")
	text = stepOpenRe.ReplaceAllString(text, "Step: ")
	text = stepCloseRe.ReplaceAllString(text, "")
	text = tabsTagRe.ReplaceAllString(text, "")
	text = tabTagRe.ReplaceAllString(text, "")
	text = accordionTagRe.ReplaceAllString(text, "")

	// 3. Strip all remaining markup tags, keeping inner text.
	text = anyTagRe.ReplaceAllString(text, "")

	// 4. Remove templating expression braces. Dynamic values cannot be
	// resolved statically, so the whole expression goes. Innermost-first
	// until fixpoint to handle nesting.
	for {
		next := braceRe.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}

	// 5. Replace fenced code blocks with a marker. Inline code spans stay.
	text = fenceRe.ReplaceAllString(text, CodeMarker)

	// 6. Strip bold/italic emphasis markers, keeping the enclosed text.
	text = boldRe.ReplaceAllString(text, "$1")
	text = boldUnderRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = italicUnderRe.ReplaceAllString(text, "$1")

	// 7. Rewrite links to their anchor text; drop images entirely.
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1 (link)")

	// 8. Normalize list markers to a single convention.
	text = bulletRe.ReplaceAllString(text, "- ")
	text = orderedRe.ReplaceAllString(text, "$1. ")

	// 9. Collapse whitespace: no padding around newlines, at most one
	// blank line, single spaces within lines.
	text = newlinePadRe.ReplaceAllString(text, "\n")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = horizontalWSRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
