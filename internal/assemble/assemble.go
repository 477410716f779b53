// Package assemble renders the final Gemini system-prompt document from a
// parsed skill and its rewritten body.
package assemble

import (
	"fmt"

	"github.com/wenqy/skillport/internal/glossary"
	"github.com/wenqy/skillport/internal/rewrite"
	"github.com/wenqy/skillport/internal/skill"
)

const bilingualTemplate = `# %s

## Description / 描述
%s

## Instructions / 指令

%s

---

## 使用说明 / Usage Notes

### 技能触发 / When to Use
%s

### 注意事项 / Important Notes
- Follow all instructions exactly / 严格遵循所有指令
- Code blocks and commands remain in English / 代码块和命令保持英文
- Technical terms are kept in original form / 技术术语保持原形式
- Skill references use gskill command / 技能引用使用 gskill 命令
`

const plainTemplate = `# %s

## Description
%s

## Instructions

%s

## Important Notes
- Follow these instructions EXACTLY
- Do not skip any steps
- If the workflow doesn't apply to the current task, state that clearly
`

// Render interpolates the parsed skill metadata and the rewritten body into
// the fixed output template for the variant. A missing description renders
// as an empty section.
func Render(doc skill.Document, body string, variant rewrite.Variant, g *glossary.Glossary) string {
	desc := doc.Description()

	if variant == rewrite.VariantPlain {
		return fmt.Sprintf(plainTemplate, doc.Title(), desc, body)
	}

	title := doc.Title()
	if zh, ok := g.SkillNames[doc.Name()]; ok {
		title += " (" + zh + ")"
	}
	return fmt.Sprintf(bilingualTemplate, title, desc, body, desc)
}
