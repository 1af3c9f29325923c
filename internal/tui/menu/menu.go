// ABOUTME: Section menu for the admin console TUI
// ABOUTME: Cursor list over admin sections plus settings and logout

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/styles"
)

// Item is one selectable menu entry
type Item struct {
	Label string
	Hint  string
}

// SelectedMsg is sent when the user confirms an entry
type SelectedMsg struct {
	Index int
}

// CancelledMsg is sent when the user backs out of the menu
type CancelledMsg struct{}

// Menu is the section selection screen
type Menu struct {
	items  []Item
	cursor int
}

// New creates a menu over the given entries
func New(items []Item) *Menu {
	return &Menu{items: items}
}

// Cursor returns the highlighted index
func (m *Menu) Cursor() int {
	return m.cursor
}

// Update handles navigation keys
func (m *Menu) Update(msg tea.Msg) (*Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		index := m.cursor
		return m, func() tea.Msg { return SelectedMsg{Index: index} }
	case "q", "esc":
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, nil
}

// View renders the menu
func (m *Menu) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Sections"))
	sb.WriteString("\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Label)
		if i == m.cursor {
			line = styles.KeyStyle.Render("> ") + styles.ValueStyle.Render(item.Label)
		}
		if item.Hint != "" {
			line += "  " + styles.Subtitle.Render(item.Hint)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("↑↓ navigate · enter open · q quit"))
	return sb.String()
}
