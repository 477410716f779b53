package rewrite

import (
	"regexp"
	"strings"

	"github.com/wenqy/skillport/internal/glossary"
)

var (
	headingRegex     = regexp.MustCompile(`^(#{2,4})\s+(.+?)\s*$`)
	termHeadingRegex = regexp.MustCompile(`^(#{2,4})\s+([A-Z-]+)\s+-\s+(.+)$`)
	referenceRegex   = regexp.MustCompile(`superpowers:([a-zA-Z-]+)`)
	listItemRegex    = regexp.MustCompile(`^\s*[-*]\s+`)
	skillToolRegex   = regexp.MustCompile(`Skill\([^)]+\)`)
	todoToolRegex    = regexp.MustCompile(`TodoWrite\([^)]+\)`)
)

// translationOpen is the bracket wrapping inserted translations. Its presence
// anywhere in a line suppresses re-insertion, which keeps the rules idempotent
// when a document is converted twice.
const translationOpen = "【"

// Rule is a pure line transform. Rules never see lines inside code fences;
// the pipeline handles fence classification before dispatching.
type Rule interface {
	Apply(line string) string
}

// headingGloss appends a localized gloss in parentheses after a known English
// section title, preserving the heading markers and title text.
type headingGloss struct {
	titles map[string]string
}

func (r headingGloss) Apply(line string) string {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	gloss, ok := r.titles[m[2]]
	if !ok {
		return line
	}
	return m[1] + " " + m[2] + " (" + gloss + ")"
}

// termGloss annotates all-caps tokens in headings shaped like
// "### RED - Write Failing Test". Unknown tokens are left unchanged.
type termGloss struct {
	terms map[string]string
}

func (r termGloss) Apply(line string) string {
	m := termHeadingRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	annotated, ok := r.terms[m[2]]
	if !ok {
		return line
	}
	return m[1] + " " + annotated + " - " + m[3]
}

// referenceRewrite replaces every superpowers:<skill-name> token with an
// instruction that names the skill file and the gskill command to load it.
type referenceRewrite struct {
	template string // expansion with $1 standing for the skill name
}

func (r referenceRewrite) Apply(line string) string {
	return referenceRegex.ReplaceAllString(line, r.template)
}

// paragraphInsert appends a wrapped translation line after paragraphs whose
// trimmed text exactly matches a glossary entry. Headings and list items are
// never translated.
type paragraphInsert struct {
	paragraphs map[string]string
}

func (r paragraphInsert) Apply(line string) string {
	if strings.HasPrefix(line, "#") || listItemRegex.MatchString(line) {
		return line
	}
	if strings.Contains(line, translationOpen) {
		return line
	}
	zh, ok := r.paragraphs[strings.TrimSpace(line)]
	if !ok {
		return line
	}
	return line + "\n" + translationOpen + zh + "】"
}

// toolScrub removes Claude-specific tool invocations that have no Gemini
// counterpart, replacing them with neutral instructions.
type toolScrub struct{}

func (toolScrub) Apply(line string) string {
	line = skillToolRegex.ReplaceAllString(line, "[Use related workflow]")
	return todoToolRegex.ReplaceAllString(line, "[Track this task]")
}

// rulesFor builds the ordered rule list for a variant. The reference rewrite
// is returned separately because it also applies inside markdown-language
// fences, where every other rule is skipped.
func rulesFor(variant Variant, g *glossary.Glossary) (rules []Rule, ref referenceRewrite) {
	switch variant {
	case VariantPlain:
		ref = referenceRewrite{template: "switch to skill $1.md (use gskill $1)"}
		return []Rule{ref, toolScrub{}}, ref
	default:
		ref = referenceRewrite{template: "切换到技能 $1.md (使用 gskill $1)"}
		return []Rule{
			headingGloss{titles: g.Titles},
			termGloss{terms: g.Terms},
			ref,
			paragraphInsert{paragraphs: g.Paragraphs},
		}, ref
	}
}
