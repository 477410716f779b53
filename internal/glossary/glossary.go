package glossary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Glossary holds the hand-curated translation and annotation tables used by
// the rewrite pipeline. Matching is exact-string lookup; anything not in a
// table passes through unchanged.
type Glossary struct {
	// SkillNames maps a skill identifier to its localized name, appended to
	// the rendered document title.
	SkillNames map[string]string `yaml:"skill_names"`

	// Titles maps known English section titles to the gloss appended in
	// parentheses after the heading text.
	Titles map[string]string `yaml:"titles"`

	// Terms maps all-caps heading tokens (e.g. RED) to their annotated form.
	Terms map[string]string `yaml:"terms"`

	// Paragraphs maps exact trimmed paragraph text to the translation line
	// inserted below it. Values are stored without the 【】 wrapper.
	Paragraphs map[string]string `yaml:"paragraphs"`
}

// Default returns the built-in tables.
func Default() *Glossary {
	return &Glossary{
		SkillNames: map[string]string{
			"brainstorming":                  "头脑风暴",
			"writing-plans":                  "编写计划",
			"systematic-debugging":           "系统化调试",
			"test-driven-development":        "测试驱动开发",
			"using-git-worktrees":            "使用 Git 工作树",
			"subagent-driven-development":    "子代理驱动开发",
			"executing-plans":                "执行计划",
			"verification-before-completion": "完成前验证",
			"requesting-code-review":         "请求代码审查",
			"receiving-code-review":          "接收代码审查",
			"finishing-a-development-branch": "完成开发分支",
			"dispatching-parallel-agents":    "分发并行任务",
			"writing-skills":                 "编写技能",
			"using-superpowers":              "使用 Superpowers",
		},
		Titles: map[string]string{
			"Overview":           "概述",
			"Core principle":     "核心原则",
			"When to Use":        "使用时机",
			"The Process":        "流程",
			"Instructions":       "指令",
			"Description":        "描述",
			"Key Principles":     "关键原则",
			"Important Notes":    "重要说明",
			"Red-Green-Refactor": "红绿重构循环",
			"The Iron Law":       "铁律",
			"Exceptions":         "例外情况",
		},
		Terms: map[string]string{
			"RED":      "RED (红 - 编写失败的测试)",
			"GREEN":    "GREEN (绿 - 编写最小代码)",
			"REFACTOR": "REFACTOR (重构 - 清理代码)",
		},
		Paragraphs: map[string]string{
			"Help turn ideas into fully formed designs and specs through natural collaborative dialogue.":                                                                "通过自然的对话协作，将想法转化为完整的设计和规格",
			"Start by understanding the current project context, then ask questions one at a time to refine the idea.":                                                   "首先了解当前项目状态，然后逐个提问来完善想法",
			"Once you understand what you're building, present the design in small sections (200-300 words), checking after each section whether it looks right so far.": "一旦你理解了要构建的内容，分段展示设计（每段 200-300 字），每段后确认是否正确",
			"Write the test first. Watch it fail. Write minimal code to pass.":                                                                                           "先写测试。看它失败。编写最小代码让它通过",
			"Core principle: If you didn't watch the test fail, you don't know if it tests the right thing.":                                                             "核心原则：如果你没有看到测试失败，你就不知道它是否测试了正确的东西",
			"Violating the letter of the rules is violating the spirit of the rules.":                                                                                    "违反规则的字面意思就是违反规则的精神",
			"NO PRODUCTION CODE WITHOUT A FAILING TEST FIRST":                                                                                                            "没有失败的测试，就不写生产代码",
			"Write code before the test? Delete it. Start over.":                                                                                                         "在测试之前写了代码？删除它。重新开始",
			"Use when encountering any bug, test failure, or unexpected behavior, before proposing fixes.":                                                               "遇到任何 bug、测试失败或意外行为时使用，在提出修复方案之前",
			"Follow these instructions EXACTLY":                                                                                                                          "严格遵循这些指令",
			"Do not skip any steps":                                                                                                                                      "不要跳过任何步骤",
			"If the workflow doesn't apply to the current task, state that clearly":                                                                                      "如果工作流程不适用于当前任务，明确说明",
			"Write comprehensive implementation plans assuming the engineer has zero context for our codebase and questionable taste.":                                   "编写全面的实现计划，假设工程师对代码库零背景且品味存疑",
			"Document everything they need to know: which files to touch for each task, code, testing, docs they might need to check, how to test it.":                   "记录他们需要知道的一切：每个任务要修改哪些文件、代码、测试、文档、如何测试",
			"A 4-phase process for finding root causes of bugs and unexpected behavior.":                                                                                 "一个 4 阶段流程，用于找出 bug 和意外行为的根本原因",
		},
	}
}

// Load reads a YAML glossary file and merges its entries over the defaults.
// File entries win on key collision, so users can both extend and override
// the built-in tables without a code change.
func Load(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read glossary: %w", err)
	}

	var overlay Glossary
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse glossary %s: %w", path, err)
	}

	g := Default()
	merge(g.SkillNames, overlay.SkillNames)
	merge(g.Titles, overlay.Titles)
	merge(g.Terms, overlay.Terms)
	merge(g.Paragraphs, overlay.Paragraphs)
	return g, nil
}

// SkillName returns the localized name for a skill, or the identifier itself
// when no translation is known.
func (g *Glossary) SkillName(name string) string {
	if zh, ok := g.SkillNames[name]; ok {
		return zh
	}
	return name
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
