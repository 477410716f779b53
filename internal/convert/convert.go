// Package convert drives the batch conversion: it enumerates skill documents
// under a source root, runs each through the rewrite pipeline, and writes the
// converted prompts plus the index, usage guide, and launcher scripts.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wenqy/skillport/internal/assemble"
	"github.com/wenqy/skillport/internal/glossary"
	"github.com/wenqy/skillport/internal/rewrite"
	"github.com/wenqy/skillport/internal/skill"
)

// Converter holds the configuration for one conversion run. Documents are
// processed one at a time; the only shared state across iterations is the
// read-only glossary.
type Converter struct {
	SourceDir string
	OutputDir string
	Variant   rewrite.Variant
	Glossary  *glossary.Glossary
	Progress  io.Writer // per-skill progress lines; nil silences them
}

// Entry describes one converted skill.
type Entry struct {
	Name        string
	Description string
	File        string // output filename relative to OutputDir
}

// Result is the outcome of a run. A run over an empty or missing source
// directory completes normally with zero entries; callers decide whether
// that is an error.
type Result struct {
	Entries []Entry
}

// Count reports how many skills were converted.
func (r *Result) Count() int { return len(r.Entries) }

// Run converts every <source>/<skill>/SKILL.md, writes one output file per
// skill, and emits INDEX.md, README.md and the switch-skill launcher scripts.
// The first read or write failure aborts the run; already-written files are
// left in place.
func (c *Converter) Run() (*Result, error) {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths, err := c.findSkillFiles()
	if err != nil {
		return nil, err
	}

	pipeline := rewrite.NewPipeline(c.Variant, c.Glossary)
	result := &Result{}

	for _, path := range paths {
		entry, err := c.convertOne(path, pipeline)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, entry)
		c.logf("  [OK] %s -> %s\n", entry.Name, entry.File)
	}

	if result.Count() > 0 {
		if err := c.writeIndex(result.Entries); err != nil {
			return nil, err
		}
		if err := c.writeUsageGuide(result.Entries); err != nil {
			return nil, err
		}
		if err := c.writeSwitchScripts(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// findSkillFiles matches one SKILL.md per skill subdirectory. A missing
// source root yields zero matches, not an error.
func (c *Converter) findSkillFiles() ([]string, error) {
	if _, err := os.Stat(c.SourceDir); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(c.SourceDir), "*/"+skill.FileName)
	if err != nil {
		return nil, fmt.Errorf("scan source dir: %w", err)
	}

	sort.Strings(matches)
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(c.SourceDir, filepath.FromSlash(m))
	}
	return paths, nil
}

func (c *Converter) convertOne(path string, pipeline *rewrite.Pipeline) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read skill %s: %w", path, err)
	}

	doc := skill.Parse(string(content), path)
	body := pipeline.Rewrite(doc.Body)
	rendered := assemble.Render(doc, body, c.Variant, c.Glossary)

	outName := doc.Name() + ".md"
	outPath := filepath.Join(c.OutputDir, outName)
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return Entry{}, fmt.Errorf("write %s: %w", outPath, err)
	}

	return Entry{Name: doc.Name(), Description: doc.Description(), File: outName}, nil
}

// writeIndex emits INDEX.md summarizing every converted skill.
func (c *Converter) writeIndex(entries []Entry) error {
	var b strings.Builder
	b.WriteString("# Superpowers 技能索引\n\n")
	b.WriteString("这是为 Gemini CLI 转换的 Superpowers 技能集。\n\n")
	b.WriteString("## 使用方法\n\n")
	b.WriteString("```bash\n# 切换到某个技能\nexport GEMINI_SYSTEM_MD=/path/to/skill.md\n\n")
	b.WriteString("# 或使用切换脚本\n./switch-skill.sh brainstorming\n```\n\n")
	b.WriteString("## 技能列表\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "### %s\n\n", e.Name)
		fmt.Fprintf(&b, "**描述:** %s\n\n", e.Description)
		fmt.Fprintf(&b, "**文件:** `%s`\n\n", e.File)
	}

	path := filepath.Join(c.OutputDir, "INDEX.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// writeUsageGuide emits README.md with static instructional content plus the
// converted skill list.
func (c *Converter) writeUsageGuide(entries []Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, usageGuideHeader, len(entries))

	for _, e := range entries {
		zh := c.Glossary.SkillName(e.Name)
		fmt.Fprintf(&b, "- **%s** (`%s`)\n", zh, e.File)
	}

	b.WriteString(usageGuideFooter)

	path := filepath.Join(c.OutputDir, "README.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write usage guide: %w", err)
	}
	return nil
}

// writeSwitchScripts emits the shell and batch launchers. Their content is
// fixed; both resolve the skill file relative to their own location, so no
// path interpolation is needed.
func (c *Converter) writeSwitchScripts() error {
	shPath := filepath.Join(c.OutputDir, "switch-skill.sh")
	if err := os.WriteFile(shPath, []byte(switchScriptSh), 0o755); err != nil {
		return fmt.Errorf("write switch script: %w", err)
	}

	batPath := filepath.Join(c.OutputDir, "switch-skill.bat")
	if err := os.WriteFile(batPath, []byte(switchScriptBat), 0o644); err != nil {
		return fmt.Errorf("write switch script: %w", err)
	}
	return nil
}

func (c *Converter) logf(format string, args ...any) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format, args...)
	}
}
