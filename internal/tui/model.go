// Package tui renders the wardrobe in a terminal with Bubble Tea.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"wardrobe/internal/wardrobe"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	wardrobe *wardrobe.Wardrobe
	title    string
	keys     KeyMap
	help     help.Model

	cursor    int
	statusMsg string
	err       error
}

func New(title string, w *wardrobe.Wardrobe) *Model {
	return &Model{
		wardrobe: w,
		title:    title,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the highlighted category.
func (m *Model) Cursor() int {
	return m.cursor
}

// SelectedCategory returns the highlighted category name.
func (m *Model) SelectedCategory() string {
	return m.wardrobe.Categories()[m.cursor]
}

func (m *Model) StatusMsg() string {
	return m.statusMsg
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.wardrobe.Categories()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(categories)) % len(categories)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(categories)
	case key.Matches(msg, m.keys.Prev):
		m.move(m.wardrobe.Prev)
	case key.Matches(msg, m.keys.Next):
		m.move(m.wardrobe.Next)
	case key.Matches(msg, m.keys.Outfit):
		outfit := m.wardrobe.CreateOutfit()
		m.err = nil
		m.statusMsg = "Outfit: " + outfit.String()
	}
	return m, nil
}

func (m *Model) move(step func(string) (string, error)) {
	category := m.SelectedCategory()
	path, err := step(category)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.statusMsg = fmt.Sprintf("%s → %s", category, filepath.Base(path))
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, piece := range m.wardrobe.Outfit() {
		marker := "  "
		item := ItemStyle.Render(piece.Label())
		if i == m.cursor {
			marker = "> "
			item = SelectedStyle.Render(piece.Label())
		}
		b.WriteString(marker + CategoryStyle.Render(piece.Category) + item + "\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	} else if m.statusMsg != "" {
		b.WriteString(StatusStyle.Render(m.statusMsg))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return App.Render(b.String())
}
