// Package ui implements the interactive skill picker: a filterable list of
// converted skill prompts with a preview pane. Selecting an entry hands its
// path back to the caller, which prints the export line for the shell.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const previewLines = 14

// Item is one selectable converted skill.
type Item struct {
	Name    string // skill name, derived from the filename
	Path    string // absolute path of the converted prompt
	Preview string // leading lines of the prompt for the preview pane
}

// LoadItems lists converted skill prompts in a directory, skipping the index,
// usage guide and launcher scripts the converter writes alongside them.
func LoadItems(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var items []Item
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if name == "INDEX.md" || name == "README.md" {
			continue
		}

		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read skill prompt %s: %w", path, err)
		}

		lines := strings.Split(string(content), "\n")
		if len(lines) > previewLines {
			lines = lines[:previewLines]
		}

		items = append(items, Item{
			Name:    strings.TrimSuffix(name, ".md"),
			Path:    path,
			Preview: strings.Join(lines, "\n"),
		})
	}
	return items, nil
}

// Run launches the picker and returns the selected item, or nil when the
// user cancelled.
func Run(items []Item) (*Item, error) {
	m := newModel(items)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(model).selected, nil
}

type model struct {
	input    textinput.Model
	items    []Item
	filtered []Item
	cursor   int
	offset   int
	width    int
	height   int
	selected *Item
	styles   styleSet
}

func newModel(items []Item) model {
	input := textinput.New()
	input.Placeholder = "filter skills..."
	input.Focus()

	return model{
		input:    input,
		items:    items,
		filtered: items,
		styles:   defaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				item := m.filtered[m.cursor]
				m.selected = &item
			}
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampOffset()
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.clampOffset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

// filter narrows the list with case-insensitive substring matching on every
// query word, the way the query box behaves in the converter's ancestors.
func (m *model) filter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.items
	} else {
		words := strings.Fields(query)
		var filtered []Item
		for _, item := range m.items {
			haystack := strings.ToLower(item.Name + " " + item.Preview)
			match := true
			for _, w := range words {
				if !strings.Contains(haystack, w) {
					match = false
					break
				}
			}
			if match {
				filtered = append(filtered, item)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.offset = 0
	}
	m.clampOffset()
}

func (m *model) clampOffset() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m model) listHeight() int {
	// input line, help line, preview pane and its border
	h := m.height - 2 - previewLines - 2
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Dim.Render("  no skills match"))
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		item := m.filtered[i]
		line := m.styles.Name.Render(item.Name)
		if i == m.cursor {
			line = m.styles.Cursor.Render("> ") + m.styles.Selected.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.cursor < len(m.filtered) {
		b.WriteString("\n")
		b.WriteString(m.styles.Border.Render(m.filtered[m.cursor].Preview))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Dim.Render("enter: select  esc: cancel"))
	return b.String()
}
