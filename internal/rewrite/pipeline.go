// Package rewrite implements the line-oriented transform that converts a
// skill body from Claude prompt conventions to Gemini system-prompt
// conventions. Lines outside code fences pass through an ordered list of
// rules; fenced lines are left verbatim, except that fences declared as
// markdown still get skill-reference rewriting (they are documentation
// examples, not code).
package rewrite

import (
	"strings"

	"github.com/wenqy/skillport/internal/glossary"
)

// docLang marks fenced blocks that contain documentation examples rather
// than code. Reference tokens inside them must still be rewritten.
const docLang = "markdown"

// Variant selects which rule set the pipeline applies.
type Variant string

const (
	// VariantBilingual keeps the English text and adds Chinese glosses and
	// translations next to it. This is the default.
	VariantBilingual Variant = "bilingual"

	// VariantPlain rewrites references and scrubs Claude-specific tool calls
	// without inserting any translations.
	VariantPlain Variant = "plain"
)

// ParseVariant validates a variant name from configuration.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case VariantBilingual, VariantPlain:
		return Variant(s), true
	case "":
		return VariantBilingual, true
	}
	return "", false
}

// Pipeline applies a fixed, ordered rule set to a document body.
type Pipeline struct {
	rules []Rule
	ref   referenceRewrite
}

// NewPipeline builds the rule set for a variant from the given glossary.
// The glossary is read-only configuration; the pipeline never mutates it.
func NewPipeline(variant Variant, g *glossary.Glossary) *Pipeline {
	rules, ref := rulesFor(variant, g)
	return &Pipeline{rules: rules, ref: ref}
}

// Rewrite scans the body top to bottom, threading the fence state through
// the scan, and returns the transformed body. Line structure is preserved
// except where a rule inserts a translation line.
func (p *Pipeline) Rewrite(body string) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	var state fenceState

	for i, line := range lines {
		next, boundary := state.next(line)
		state = next
		if boundary {
			out = append(out, line)
			continue
		}
		if state.open {
			if state.lang == docLang {
				out = append(out, p.ref.Apply(line))
			} else {
				out = append(out, line)
			}
			continue
		}
		for _, rule := range p.rules {
			line = rule.Apply(line)
		}
		// A rule may have appended a translation line. Drop it when the
		// following source line already carries the same translation, so
		// converting a document twice yields identical output.
		if idx := strings.Index(line, "\n"); idx >= 0 {
			if i+1 < len(lines) && lines[i+1] == line[idx+1:] {
				line = line[:idx]
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
