// ABOUTME: Paginated list screen for one admin section
// ABOUTME: Table, debounced search, column picker, multi-select, delete modal

package listview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mylikerahul/acasa-adminctl/internal/listctl"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/resources"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/styles"
)

// BackMsg is sent when the user leaves the list screen
type BackMsg struct{}

// CreateMsg asks the app to open an empty form for this section
type CreateMsg struct {
	Resource string
}

// EditMsg asks the app to open a form pre-filled from a row
type EditMsg struct {
	Resource string
	Row      resources.Row
}

// refreshedMsg re-renders after an async controller change
type refreshedMsg struct{}

// deleteDoneMsg reports the outcome of a confirmed delete
type deleteDoneMsg struct {
	err error
}

// statusDoneMsg reports the outcome of a status change
type statusDoneMsg struct {
	err error
}

var pageSizes = []int{10, 25, 50, 100}

// Model is the list screen for one resource
type Model struct {
	spec resources.Spec
	ctrl *listctl.Controller[resources.Row]

	table   table.Model
	search  textinput.Model
	rows    []resources.Row
	changes chan struct{}

	searching  bool
	pickingCol bool
	note       string
	width      int
	height     int
}

// New creates a list screen wired to the section's backend operations
func New(spec resources.Spec) *Model {
	changes := make(chan struct{}, 1)

	m := &Model{
		spec:    spec,
		changes: changes,
	}
	m.ctrl = listctl.New(listctl.Config[resources.Row]{
		Fetch:          spec.Fetch,
		DeleteOne:      spec.DeleteOne,
		DeleteMany:     spec.DeleteMany,
		ID:             func(r resources.Row) string { return r.ID },
		Columns:        spec.ColumnIDs(),
		DefaultVisible: spec.DefaultVisible,
		OnChange: func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		},
	})

	m.search = textinput.New()
	m.search.Placeholder = "Search " + spec.Name
	m.search.CharLimit = 80

	m.table = table.New(
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(styles.Primary)
	ts.Selected = ts.Selected.Foreground(styles.Text).Background(styles.Surface).Bold(true)
	m.table.SetStyles(ts)
	m.rebuildTable()

	return m
}

// Close tears the screen down, stopping timers and in-flight fetches
func (m *Model) Close() {
	m.ctrl.Close()
}

// Init starts the first fetch and the change listener
func (m *Model) Init() tea.Cmd {
	m.ctrl.Refresh()
	return m.listen()
}

// listen blocks on the controller's change signal and re-arms itself
func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return refreshedMsg{}
	}
}

// Update handles keys and async completions
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 12; h > 4 {
			m.table.SetHeight(h)
		}
		return m, nil

	case refreshedMsg:
		m.rebuildTable()
		return m, m.listen()

	case deleteDoneMsg:
		if msg.err != nil {
			m.note = msg.err.Error()
		} else {
			m.note = "Deleted"
		}
		return m, nil

	case statusDoneMsg:
		if msg.err != nil {
			m.note = msg.err.Error()
		} else {
			m.ctrl.Refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	// The confirm modal swallows every key until resolved
	if m.ctrl.PendingDelete() != nil {
		switch msg.String() {
		case "y", "enter":
			return m, func() tea.Msg {
				return deleteDoneMsg{err: m.ctrl.ConfirmDelete(context.Background())}
			}
		case "n", "esc":
			m.ctrl.CancelDelete()
		}
		return m, nil
	}

	if m.searching {
		switch msg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.ctrl.SetSearch(m.search.Value())
			return m, cmd
		}
		return m, nil
	}

	if m.pickingCol {
		key := msg.String()
		if key == "esc" || key == "c" {
			m.pickingCol = false
			return m, nil
		}
		if n := int(key[0] - '0'); len(key) == 1 && n >= 1 && n <= len(m.spec.Columns) {
			m.ctrl.ToggleColumn(m.spec.Columns[n-1].ID)
			m.rebuildTable()
		}
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.searching = true
		m.note = ""
		return m, m.search.Focus()
	case "c":
		m.pickingCol = true
	case "r":
		m.note = ""
		m.ctrl.Refresh()
	case "left", "h":
		m.ctrl.SetPage(m.ctrl.Query().Page - 1)
	case "right", "l":
		m.ctrl.SetPage(m.ctrl.Query().Page + 1)
	case "L":
		m.cyclePageSize()
	case " ":
		if row := m.currentRow(); row != nil {
			m.ctrl.ToggleSelect(row.ID)
			m.rebuildTable()
		}
	case "d":
		if row := m.currentRow(); row != nil {
			m.ctrl.RequestDelete(row.ID)
		}
	case "D":
		m.ctrl.RequestBulkDelete()
	case "s":
		return m, m.cycleStatus()
	case "n":
		if m.spec.Save != nil {
			resource := m.spec.Name
			return m, func() tea.Msg { return CreateMsg{Resource: resource} }
		}
	case "e":
		if row := m.currentRow(); row != nil && m.spec.Save != nil {
			resource, r := m.spec.Name, *row
			return m, func() tea.Msg { return EditMsg{Resource: resource, Row: r} }
		}
	case "esc", "b":
		return m, func() tea.Msg { return BackMsg{} }
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) cyclePageSize() {
	limit := m.ctrl.Query().Limit
	for i, size := range pageSizes {
		if size == limit {
			m.ctrl.SetLimit(pageSizes[(i+1)%len(pageSizes)])
			return
		}
	}
	m.ctrl.SetLimit(pageSizes[0])
}

// cycleStatus advances the current row to the next status value
func (m *Model) cycleStatus() tea.Cmd {
	row := m.currentRow()
	if row == nil || m.spec.SetStatus == nil || len(m.spec.Statuses) == 0 {
		return nil
	}

	current := row.Cells["status"]
	next := m.spec.Statuses[0]
	for i, s := range m.spec.Statuses {
		if s == current {
			next = m.spec.Statuses[(i+1)%len(m.spec.Statuses)]
			break
		}
	}

	id := row.ID
	set := m.spec.SetStatus
	return func() tea.Msg {
		return statusDoneMsg{err: set(context.Background(), id, next)}
	}
}

func (m *Model) currentRow() *resources.Row {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return &m.rows[i]
}

// rebuildTable re-derives table columns and rows from controller state
func (m *Model) rebuildTable() {
	visible := m.ctrl.VisibleColumns()
	byID := make(map[string]resources.Column, len(m.spec.Columns))
	for _, col := range m.spec.Columns {
		byID[col.ID] = col
	}

	cols := make([]table.Column, 0, len(visible)+1)
	cols = append(cols, table.Column{Title: " ", Width: 2})
	for _, id := range visible {
		col := byID[id]
		cols = append(cols, table.Column{Title: col.Title, Width: col.Width})
	}

	m.rows = m.ctrl.Items()
	selected := map[string]bool{}
	for _, id := range m.ctrl.SelectedIDs() {
		selected[id] = true
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		cells := make([]string, 0, len(visible)+1)
		marker := " "
		if selected[r.ID] {
			marker = "✓"
		}
		cells = append(cells, marker)
		for _, id := range visible {
			cells = append(cells, r.Cells[id])
		}
		rows = append(rows, cells)
	}

	cursor := m.table.Cursor()
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// View renders the screen
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(m.spec.Title))
	sb.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}

	if target := m.ctrl.PendingDelete(); target != nil {
		sb.WriteString(m.viewModal(target))
		return sb.String()
	}

	if m.pickingCol {
		sb.WriteString(m.viewColumnPicker())
		sb.WriteString("\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.viewFooter())

	if err := m.ctrl.Err(); err != nil {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusError.Render(err.Error()))
	} else if m.note != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render(m.note))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("/ search · space select · d delete · D delete selected · s status · n new · e edit · c columns · ←→ page · b back"))
	return sb.String()
}

func (m *Model) viewModal(target *listctl.DeleteTarget) string {
	text := fmt.Sprintf("Delete this %s record?", m.spec.Name)
	if target.Bulk {
		text = fmt.Sprintf("Delete %d selected records?", len(target.IDs))
	}
	return styles.Modal.Render(text + "\n\n" +
		styles.KeyStyle.Render("y") + " confirm   " +
		styles.KeyStyle.Render("n") + " cancel")
}

func (m *Model) viewColumnPicker() string {
	visible := map[string]bool{}
	for _, id := range m.ctrl.VisibleColumns() {
		visible[id] = true
	}

	parts := make([]string, 0, len(m.spec.Columns))
	for i, col := range m.spec.Columns {
		mark := "○"
		if visible[col.ID] {
			mark = "●"
		}
		parts = append(parts, fmt.Sprintf("%d %s %s", i+1, mark, col.Title))
	}
	return styles.Panel.Render("Columns: " + strings.Join(parts, "   "))
}

// viewFooter renders the pagination window and result count
func (m *Model) viewFooter() string {
	total := m.ctrl.Total()
	window := listctl.PageWindow(m.ctrl.Query().Page, m.ctrl.TotalPages())

	count := fmt.Sprintf("%d results · %d per page", total, m.ctrl.Query().Limit)
	if m.ctrl.Loading() {
		count += " · loading…"
	}
	if window == nil {
		return styles.Subtitle.Render(count)
	}

	current := m.ctrl.Query().Page
	parts := make([]string, 0, len(window))
	for _, p := range window {
		switch {
		case p == listctl.Ellipsis:
			parts = append(parts, styles.PageOther.Render("…"))
		case p == current:
			parts = append(parts, styles.PageCurrent.Render(fmt.Sprintf("%d", p)))
		default:
			parts = append(parts, styles.PageOther.Render(fmt.Sprintf("%d", p)))
		}
	}
	pages := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return pages + "  " + styles.Subtitle.Render(count)
}
