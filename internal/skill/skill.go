package skill

import (
	"path/filepath"
	"strings"
)

const (
	// FileName is the markdown file each skill directory must contain.
	FileName = "SKILL.md"

	frontmatterMarker = "---"
)

// Document is a parsed skill file: frontmatter metadata plus the free-text
// markdown body. It is immutable once parsed.
type Document struct {
	Path string            // source file path, may be empty for in-memory docs
	Meta map[string]string // frontmatter key/value pairs, empty when absent
	Body string            // everything after the frontmatter block
}

// Parse splits raw document text into metadata and body.
//
// A frontmatter block is a "---" line at the very start of the document, key:
// value lines, and a closing "---" line. Lines without a colon are silently
// skipped; duplicate keys keep the last occurrence. When the block is missing
// or unterminated the whole input is treated as body with empty metadata.
func Parse(content, path string) Document {
	doc := Document{Path: path, Meta: map[string]string{}}

	rest, ok := strings.CutPrefix(content, frontmatterMarker+"\n")
	if !ok {
		doc.Body = content
		return doc
	}

	header, body, ok := strings.Cut(rest, "\n"+frontmatterMarker+"\n")
	if !ok {
		doc.Body = content
		return doc
	}

	for _, line := range strings.Split(header, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		doc.Meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	doc.Body = body
	return doc
}

// Name returns the skill identifier: the frontmatter name field, falling back
// to the name of the directory containing the source file.
func (d Document) Name() string {
	if name := d.Meta["name"]; name != "" {
		return name
	}
	if d.Path != "" {
		return filepath.Base(filepath.Dir(d.Path))
	}
	return ""
}

// Description returns the frontmatter description, empty when absent.
func (d Document) Description() string {
	return d.Meta["description"]
}

// Title derives a display title from the skill name: hyphens become spaces
// and each word is capitalized.
func (d Document) Title() string {
	words := strings.Split(strings.ReplaceAll(d.Name(), "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
