package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wenqy/skillport/internal/glossary"
	"github.com/wenqy/skillport/internal/rewrite"
)

func writeSkill(t *testing.T, root, dir, content string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newConverter(source, output string) *Converter {
	return &Converter{
		SourceDir: source,
		OutputDir: output,
		Variant:   rewrite.VariantBilingual,
		Glossary:  glossary.Default(),
	}
}

func TestRunEndToEnd(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()
	writeSkill(t, source, "test-skill",
		"---\nname: test-skill\ndescription: A sample.\n---\nUse superpowers:other-skill for help.\n")

	result, err := newConverter(source, output).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", result.Count())
	}

	data, err := os.ReadFile(filepath.Join(output, "test-skill.md"))
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "A sample.") {
		t.Errorf("output missing description:\n%s", out)
	}
	if strings.Contains(out, "superpowers:other-skill") {
		t.Errorf("reference token survived rewrite:\n%s", out)
	}
	if !strings.Contains(out, "other-skill") {
		t.Errorf("rewritten reference should still name the skill:\n%s", out)
	}
}

func TestRunEmitsAuxiliaryArtifacts(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()
	writeSkill(t, source, "brainstorming",
		"---\nname: brainstorming\ndescription: Idea refinement.\n---\nBody.\n")
	writeSkill(t, source, "writing-plans",
		"---\nname: writing-plans\ndescription: Plan writing.\n---\nBody.\n")

	result, err := newConverter(source, output).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", result.Count())
	}

	index, err := os.ReadFile(filepath.Join(output, "INDEX.md"))
	if err != nil {
		t.Fatalf("INDEX.md not written: %v", err)
	}
	for _, want := range []string{"### brainstorming", "Idea refinement.", "`writing-plans.md`"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("INDEX.md missing %q", want)
		}
	}

	readme, err := os.ReadFile(filepath.Join(output, "README.md"))
	if err != nil {
		t.Fatalf("README.md not written: %v", err)
	}
	for _, want := range []string{"2 个", "头脑风暴", "`brainstorming.md`"} {
		if !strings.Contains(string(readme), want) {
			t.Errorf("README.md missing %q", want)
		}
	}

	sh, err := os.Stat(filepath.Join(output, "switch-skill.sh"))
	if err != nil {
		t.Fatalf("switch-skill.sh not written: %v", err)
	}
	if sh.Mode().Perm()&0o100 == 0 {
		t.Error("switch-skill.sh is not executable")
	}
	if _, err := os.Stat(filepath.Join(output, "switch-skill.bat")); err != nil {
		t.Errorf("switch-skill.bat not written: %v", err)
	}
}

func TestRunZeroInput(t *testing.T) {
	output := t.TempDir()

	result, err := newConverter(t.TempDir(), output).Run()
	if err != nil {
		t.Fatalf("empty source should not error, got %v", err)
	}
	if result.Count() != 0 {
		t.Errorf("Count() = %d, want 0", result.Count())
	}
	if _, err := os.Stat(filepath.Join(output, "INDEX.md")); !os.IsNotExist(err) {
		t.Error("INDEX.md should not be written for a zero-skill run")
	}
}

func TestRunMissingSourceDir(t *testing.T) {
	result, err := newConverter(filepath.Join(t.TempDir(), "does-not-exist"), t.TempDir()).Run()
	if err != nil {
		t.Fatalf("missing source should not error, got %v", err)
	}
	if result.Count() != 0 {
		t.Errorf("Count() = %d, want 0", result.Count())
	}
}

func TestRunNameFallsBackToDirectory(t *testing.T) {
	source := t.TempDir()
	output := t.TempDir()
	writeSkill(t, source, "dir-named-skill", "No frontmatter at all.\n")

	result, err := newConverter(source, output).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", result.Count())
	}
	if result.Entries[0].Name != "dir-named-skill" {
		t.Errorf("Name = %q, want dir-named-skill", result.Entries[0].Name)
	}
	if _, err := os.Stat(filepath.Join(output, "dir-named-skill.md")); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunIgnoresNonSkillFiles(t *testing.T) {
	source := t.TempDir()
	// A stray markdown file at the root and a nested non-SKILL file must not match.
	if err := os.WriteFile(filepath.Join(source, "NOTES.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeSkill(t, source, "real-skill", "---\nname: real-skill\n---\nBody.\n")
	if err := os.WriteFile(filepath.Join(source, "real-skill", "extra.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := newConverter(source, t.TempDir()).Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Count() != 1 {
		t.Errorf("Count() = %d, want 1", result.Count())
	}
}
