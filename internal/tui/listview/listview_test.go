// ABOUTME: Tests for the list screen
// ABOUTME: Fetch rendering, selection, delete modal, and column picker

package listview

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/tui/resources"
)

type fakeBackend struct {
	mu      sync.Mutex
	rows    []resources.Row
	fetches atomic.Int64
	deleted []string
	bulkErr error
}

func (f *fakeBackend) spec() resources.Spec {
	return resources.Spec{
		Name:  "agents",
		Title: "Agents",
		Columns: []resources.Column{
			{ID: "name", Title: "Name", Width: 14},
			{ID: "email", Title: "Email", Width: 20},
			{ID: "status", Title: "Status", Width: 10},
		},
		DefaultVisible: []string{"name", "status"},
		Fetch: func(ctx context.Context, q client.ListQuery) (*client.Page[resources.Row], error) {
			f.fetches.Add(1)
			f.mu.Lock()
			defer f.mu.Unlock()
			items := make([]resources.Row, len(f.rows))
			copy(items, f.rows)
			return &client.Page[resources.Row]{
				Items: items, Total: len(items), Page: q.Page, TotalPages: 1,
			}, nil
		},
		DeleteOne: func(ctx context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.deleted = append(f.deleted, id)
			return nil
		},
		DeleteMany: func(ctx context.Context, ids []string) error {
			return f.bulkErr
		},
	}
}

func newTestList(t *testing.T) (*Model, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{
		rows: []resources.Row{
			{ID: "a1", Cells: map[string]string{"name": "Asha", "email": "asha@x.y", "status": "active"}},
			{ID: "b2", Cells: map[string]string{"name": "Birla", "email": "b@x.y", "status": "inactive"}},
		},
		bulkErr: &client.APIError{StatusCode: http.StatusNotFound},
	}
	m := New(backend.spec())
	t.Cleanup(m.Close)
	m.Init()
	waitRows(t, m, 2)
	return m, backend
}

// waitRows polls until the controller holds want rows, then re-renders
func waitRows(t *testing.T, m *Model, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(m.ctrl.Items()) == want && !m.ctrl.Loading() {
			m.Update(refreshedMsg{})
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("controller never reached %d rows", want)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestList_InitialFetchRendersRows(t *testing.T) {
	m, _ := newTestList(t)

	view := m.View()
	if !strings.Contains(view, "Asha") || !strings.Contains(view, "Birla") {
		t.Errorf("expected rows in view:\n%s", view)
	}
	if !strings.Contains(view, "2 results") {
		t.Errorf("expected result count in footer:\n%s", view)
	}
	// Hidden column stays hidden by default
	if strings.Contains(view, "asha@x.y") {
		t.Error("email column must be hidden by default")
	}
}

func TestList_BulkDeleteFallsBackPerID(t *testing.T) {
	m, backend := newTestList(t)

	// Select both rows
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	m.Update(runes("D"))
	if m.ctrl.PendingDelete() == nil {
		t.Fatal("expected a pending bulk delete")
	}
	if !strings.Contains(m.View(), "2 selected") {
		t.Errorf("modal must show the selection size:\n%s", m.View())
	}

	_, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected a confirm command")
	}
	msg := cmd()
	done, ok := msg.(deleteDoneMsg)
	if !ok {
		t.Fatalf("expected deleteDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("unexpected delete error: %v", done.err)
	}

	backend.mu.Lock()
	deleted := len(backend.deleted)
	backend.mu.Unlock()
	if deleted != 2 {
		t.Errorf("expected per-id fallback to delete 2 rows, deleted %d", deleted)
	}
	if m.ctrl.PendingDelete() != nil {
		t.Error("modal must close after resolution")
	}
	if len(m.ctrl.SelectedIDs()) != 0 {
		t.Error("selection must clear after bulk delete")
	}
}

func TestList_CancelDeleteTouchesNothing(t *testing.T) {
	m, backend := newTestList(t)

	m.Update(runes("d"))
	if m.ctrl.PendingDelete() == nil {
		t.Fatal("expected a pending delete")
	}
	m.Update(runes("n"))
	if m.ctrl.PendingDelete() != nil {
		t.Error("cancel must close the modal")
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.deleted) != 0 {
		t.Errorf("cancel must not delete, got %v", backend.deleted)
	}
}

func TestList_ColumnToggleNeverRefetches(t *testing.T) {
	m, backend := newTestList(t)
	before := backend.fetches.Load()

	m.Update(runes("c"))
	m.Update(runes("2")) // toggle the hidden email column on

	visible := m.ctrl.VisibleColumns()
	found := false
	for _, id := range visible {
		if id == "email" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected email column visible, got %v", visible)
	}
	if backend.fetches.Load() != before {
		t.Error("column toggling must not refetch")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.pickingCol {
		t.Error("esc must close the column picker")
	}
}

func TestList_SamePageNeverRefetches(t *testing.T) {
	m, backend := newTestList(t)
	before := backend.fetches.Load()

	// One page only: paging in either direction clamps to page 1
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	if backend.fetches.Load() != before {
		t.Errorf("clamped paging must not refetch, went from %d to %d fetches",
			before, backend.fetches.Load())
	}
}

func TestList_BackEmitsMessage(t *testing.T) {
	m, _ := newTestList(t)

	_, cmd := m.Update(runes("b"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
}
