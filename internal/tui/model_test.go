package tui

import (
	"testing"

	"wardrobe/internal/catalog"
	"wardrobe/internal/wardrobe"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ value int }

func (f fixedRand) IntN(n int) int { return f.value % n }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cat := &catalog.Catalog{Categories: []catalog.Category{
		{Name: "tops", Items: []string{"tops/a.png", "tops/b.png", "tops/c.png"}},
		{Name: "bottoms", Items: []string{"bottoms/a.png", "bottoms/b.png"}},
		{Name: "shoes", Items: []string{"shoes/a.png"}},
	}}
	w, err := wardrobe.New(cat, wardrobe.WithRand(fixedRand{value: 1}))
	require.NoError(t, err)
	return New("Test Wardrobe", w)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func current(t *testing.T, m *Model, category string) string {
	t.Helper()
	path, err := m.wardrobe.Current(category)
	require.NoError(t, err)
	return path
}

func TestModelInitialization(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.Init())
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "tops", m.SelectedCategory())

	view := m.View()
	assert.Contains(t, view, "Test Wardrobe")
	assert.Contains(t, view, "a.png (1/3)")
	assert.Contains(t, view, "bottoms")
}

func TestCursorMovementWraps(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "shoes", m.SelectedCategory())

	m.Update(runes("j"))
	assert.Equal(t, "tops", m.SelectedCategory())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "bottoms", m.SelectedCategory())
}

func TestPrevNextCycleSelectedCategory(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("h"))
	assert.Equal(t, "tops/c.png", current(t, m, "tops"))
	assert.Equal(t, "tops → c.png", m.StatusMsg())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "tops/a.png", current(t, m, "tops"))

	m.Update(runes("j"))
	m.Update(runes("l"))
	m.Update(runes("l"))
	assert.Equal(t, "bottoms/a.png", current(t, m, "bottoms"))
	assert.Equal(t, "tops/a.png", current(t, m, "tops"))
}

func TestCreateOutfitKey(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("r"))
	assert.Equal(t, "tops/b.png", current(t, m, "tops"))
	assert.Equal(t, "bottoms/b.png", current(t, m, "bottoms"))
	assert.Equal(t, "shoes/a.png", current(t, m, "shoes"))
	assert.Contains(t, m.StatusMsg(), "tops=b.png")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	m.Update(runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "previous category")
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newTestModel(t)
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 42, Height: 10})
	assert.Equal(t, 42, m.help.Width)
}
