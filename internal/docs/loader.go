package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one source file of the content tree, ready for extraction.
type Document struct {
	Path    string // relative to the content root, forward slashes
	Title   string // front matter title, or derived from the filename
	PageURL string // stable URL of the rendered page
	Body    string // raw markdown body, front matter removed
	Raw     string // full file contents as read
}

type frontMatter struct {
	Title string `yaml:"title"`
}

// ListFiles walks root and returns the relative paths of all .md and .mdx
// files, sorted by the walk order of fs.WalkDir. Other files are ignored.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content root %s: %w", root, err)
	}
	return files, nil
}

// LoadFile reads one content file and resolves its title and page URL.
// A missing or malformed front matter block is not an error; the title
// falls back to the filename and the body is used as-is.
func LoadFile(root, rel, pagePrefix string) (Document, error) {
	raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", rel, err)
	}

	meta, body := splitFrontMatter(string(raw))

	var fm frontMatter
	if meta != "" {
		// Tolerate bad YAML: the page still ingests with a derived title.
		_ = yaml.Unmarshal([]byte(meta), &fm)
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = titleFromFilename(rel)
	}

	return Document{
		Path:    rel,
		Title:   title,
		PageURL: PageURL(pagePrefix, rel),
		Body:    body,
		Raw:     string(raw),
	}, nil
}

// PageURL derives the stable page URL for a content file: prefix plus the
// relative path without its extension, with a trailing "index" segment
// stripped so directory index pages map to the directory itself.
func PageURL(prefix, rel string) string {
	p := strings.ReplaceAll(rel, "\\", "/")
	p = strings.TrimSuffix(p, path.Ext(p))
	p = strings.TrimSuffix(p, "/index")
	if p == "index" {
		p = ""
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if p == "" {
		return prefix
	}
	return prefix + "/" + p
}

// splitFrontMatter separates a leading YAML front matter block, delimited by
// `---` lines, from the document body. Files without a block return an empty
// meta string and the input unchanged.
func splitFrontMatter(raw string) (meta, body string) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return "", raw
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return "", raw
}

// titleFromFilename derives a display title from the file name: extension
// dropped, separators spaced, each word capitalized. "week-1-intro.mdx"
// becomes "Week 1 Intro".
func titleFromFilename(rel string) string {
	base := path.Base(strings.ReplaceAll(rel, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
