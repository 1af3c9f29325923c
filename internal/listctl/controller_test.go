// ABOUTME: Tests for the generic list controller
// ABOUTME: Covers debounce, stale-response discard, delete flows, and columns

package listctl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
)

type row struct {
	ID   string
	Name string
}

// fakeBackend records fetch/delete traffic for assertions
type fakeBackend struct {
	mu       sync.Mutex
	queries  []client.ListQuery
	deletes  []string
	rows     []row
	total    int
	pages    int
	fetchErr error

	// optional per-query gate: fetch blocks until the channel closes
	gates map[string]chan struct{}
}

func (f *fakeBackend) fetch(ctx context.Context, q client.ListQuery) (*client.Page[row], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.gates[q.Search]
	rows := append([]row(nil), f.rows...)
	total, pages, fetchErr := f.total, f.pages, f.fetchErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return &client.Page[row]{Items: rows, Total: total, Page: q.Page, TotalPages: pages}, nil
}

func (f *fakeBackend) deleteOne(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeBackend) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeBackend) lastQuery() client.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func newTestController(f *fakeBackend) *Controller[row] {
	return New(Config[row]{
		Fetch:          f.fetch,
		DeleteOne:      f.deleteOne,
		ID:             func(r row) string { return r.ID },
		Columns:        []string{"name", "email", "city", "status"},
		DefaultVisible: []string{"name", "status"},
		Debounce:       20 * time.Millisecond,
	})
}

// waitIdle polls until no fetch is in flight
func waitIdle(t *testing.T, c *Controller[row]) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !c.Loading() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("controller never went idle")
}

// waitFetches polls until the backend has seen n fetches and the
// controller is idle
func waitFetches(t *testing.T, c *Controller[row], f *fakeBackend, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.fetchCount() >= n && !c.Loading() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("expected %d fetches, got %d", n, f.fetchCount())
}

func TestController_SearchDebounce(t *testing.T) {
	f := &fakeBackend{rows: []row{{ID: "1", Name: "a"}}, total: 1, pages: 1}
	c := newTestController(f)
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	// Rapid keystrokes coalesce into a single fetch
	c.SetSearch("d")
	c.SetSearch("de")
	c.SetSearch("delhi")
	waitFetches(t, c, f, 2)

	q := f.lastQuery()
	if q.Search != "delhi" {
		t.Errorf("expected final search value, got %q", q.Search)
	}
	if q.Page != 1 {
		t.Errorf("expected page reset to 1, got %d", q.Page)
	}
	if f.fetchCount() != 2 {
		t.Errorf("expected exactly 2 fetches, got %d", f.fetchCount())
	}
}

func TestController_SameSearchDoesNotRefetch(t *testing.T) {
	f := &fakeBackend{total: 0, pages: 0}
	c := newTestController(f)
	defer c.Close()

	c.SetSearch("goa")
	waitFetches(t, c, f, 1)

	c.SetSearch("goa")
	time.Sleep(60 * time.Millisecond)
	if f.fetchCount() != 1 {
		t.Errorf("unchanged search must not refetch, got %d fetches", f.fetchCount())
	}
}

func TestController_SearchResetsPage(t *testing.T) {
	f := &fakeBackend{rows: []row{{ID: "1", Name: "a"}}, total: 100, pages: 10}
	c := newTestController(f)
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	c.SetPage(3)
	waitFetches(t, c, f, 2)
	if q := f.lastQuery(); q.Page != 3 {
		t.Fatalf("expected page 3, got %d", q.Page)
	}

	c.SetSearch("mumbai")
	waitFetches(t, c, f, 3)
	if q := f.lastQuery(); q.Page != 1 {
		t.Errorf("search change must reset page to 1, got %d", q.Page)
	}
}

func TestController_CloseStopsDebounce(t *testing.T) {
	f := &fakeBackend{}
	c := newTestController(f)

	c.SetSearch("never")
	c.Close()
	time.Sleep(60 * time.Millisecond)

	if f.fetchCount() != 0 {
		t.Errorf("debounce fired after Close, got %d fetches", f.fetchCount())
	}
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	slowGate := make(chan struct{})
	f := &fakeBackend{
		rows:  []row{{ID: "old", Name: "stale"}},
		total: 1, pages: 1,
		gates: map[string]chan struct{}{"slow": slowGate},
	}
	c := newTestController(f)
	defer c.Close()

	// First fetch hangs on the gate
	c.SetSearch("slow")
	waitFetches(t, c, f, 0)
	deadline := time.Now().Add(time.Second)
	for f.fetchCount() < 1 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}

	// Superseding fetch returns fresh rows immediately
	f.mu.Lock()
	f.rows = []row{{ID: "new", Name: "fresh"}}
	f.mu.Unlock()
	c.SetSearch("fast")
	waitFetches(t, c, f, 2)

	items := c.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Fatalf("expected fresh rows, got %+v", items)
	}

	// Release the stale response; it must not overwrite the fresh rows
	close(slowGate)
	time.Sleep(50 * time.Millisecond)
	items = c.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Errorf("stale response overwrote fresh rows: %+v", items)
	}
}

func TestController_FetchErrorKeepsLastGoodRows(t *testing.T) {
	f := &fakeBackend{rows: []row{{ID: "1", Name: "keep"}}, total: 1, pages: 1}
	c := newTestController(f)
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	f.mu.Lock()
	f.fetchErr = errors.New("backend down")
	f.mu.Unlock()
	c.Refresh()
	waitFetches(t, c, f, 2)

	if c.Err() == nil {
		t.Error("expected error surfaced")
	}
	if items := c.Items(); len(items) != 1 || items[0].ID != "1" {
		t.Errorf("failed fetch must keep last-good rows, got %+v", items)
	}
}

func TestController_SingleDeleteOptimistic(t *testing.T) {
	f := &fakeBackend{
		rows:  []row{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		total: 3, pages: 1,
	}
	c := newTestController(f)
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	c.RequestDelete("b")
	if target := c.PendingDelete(); target == nil || target.Bulk || target.IDs[0] != "b" {
		t.Fatalf("unexpected delete target %+v", target)
	}

	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if c.PendingDelete() != nil {
		t.Error("target must be destroyed after deletion")
	}
	items := c.Items()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Errorf("expected optimistic removal of b, got %+v", items)
	}
	if c.Total() != 2 {
		t.Errorf("expected total 2, got %d", c.Total())
	}
	// Optimistic: no refetch happened
	if f.fetchCount() != 1 {
		t.Errorf("delete must not refetch, got %d fetches", f.fetchCount())
	}
}

func TestController_CancelDelete(t *testing.T) {
	f := &fakeBackend{rows: []row{{ID: "a"}}, total: 1, pages: 1}
	c := newTestController(f)
	defer c.Close()

	c.RequestDelete("a")
	c.CancelDelete()
	if c.PendingDelete() != nil {
		t.Error("cancel must destroy the target")
	}
	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Errorf("confirm after cancel must be a no-op, got %v", err)
	}
	if len(f.deletes) != 0 {
		t.Errorf("no delete call expected, got %v", f.deletes)
	}
}

func TestController_BulkDeleteFallbackOn404(t *testing.T) {
	f := &fakeBackend{
		rows:  []row{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		total: 3, pages: 1,
	}
	bulkCalls := 0
	c := New(Config[row]{
		Fetch:     f.fetch,
		DeleteOne: f.deleteOne,
		DeleteMany: func(ctx context.Context, ids []string) error {
			bulkCalls++
			return &client.APIError{StatusCode: 404, Message: "no such route"}
		},
		ID:             func(r row) string { return r.ID },
		Columns:        []string{"name"},
		DefaultVisible: []string{"name"},
		Debounce:       20 * time.Millisecond,
	})
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	c.ToggleSelect("a")
	c.ToggleSelect("b")
	c.ToggleSelect("c")
	c.RequestBulkDelete()

	if err := c.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}

	if bulkCalls != 1 {
		t.Errorf("expected one bulk attempt, got %d", bulkCalls)
	}
	if len(f.deletes) != 3 {
		t.Errorf("expected 3 per-id fallback deletes, got %v", f.deletes)
	}
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selection must clear after all deletions resolve, got %v", got)
	}
	if c.Total() != 0 {
		t.Errorf("expected total 0 after deleting all 3, got %d", c.Total())
	}
}

func TestController_BulkDeletePartialFailure(t *testing.T) {
	f := &fakeBackend{
		rows:  []row{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		total: 3, pages: 1,
	}
	c := New(Config[row]{
		Fetch: f.fetch,
		DeleteOne: func(ctx context.Context, id string) error {
			if id == "b" {
				return fmt.Errorf("record locked")
			}
			return f.deleteOne(ctx, id)
		},
		ID:             func(r row) string { return r.ID },
		Columns:        []string{"name"},
		DefaultVisible: []string{"name"},
		Debounce:       20 * time.Millisecond,
	})
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	c.ToggleSelect("a")
	c.ToggleSelect("b")
	c.ToggleSelect("c")
	c.RequestBulkDelete()

	err := c.ConfirmDelete(context.Background())
	if err == nil {
		t.Fatal("expected error for partial failure")
	}

	// Selection clears even on accounted failure; the total drops only
	// by the records that actually deleted.
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selection must clear, got %v", got)
	}
	if c.Total() != 1 {
		t.Errorf("expected total 1 (two deleted), got %d", c.Total())
	}
	items := c.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Errorf("expected only the failed row to remain, got %+v", items)
	}
}

func TestController_QuerySnapshotIsDetached(t *testing.T) {
	f := &fakeBackend{rows: []row{{ID: "1", Name: "a"}}, total: 1, pages: 1}
	c := newTestController(f)
	defer c.Close()

	c.SetFilter("stage", "lead")
	waitFetches(t, c, f, 1)

	q := c.Query()
	q.Filters["stage"] = "closed"
	q.Filters["rogue"] = "x"

	got := c.Query()
	if got.Filters["stage"] != "lead" {
		t.Errorf("mutating the snapshot changed controller state: %v", got.Filters)
	}
	if _, ok := got.Filters["rogue"]; ok {
		t.Errorf("snapshot mutation leaked a new filter: %v", got.Filters)
	}

	c.Refresh()
	waitFetches(t, c, f, 2)
	if sent := f.lastQuery(); sent.Filters["stage"] != "lead" || sent.Filters["rogue"] != "" {
		t.Errorf("fetch saw mutated filters: %v", sent.Filters)
	}
}

func TestController_ColumnToggleNeverFetches(t *testing.T) {
	f := &fakeBackend{}
	c := newTestController(f)
	defer c.Close()

	if got := c.VisibleColumns(); len(got) != 2 || got[0] != "name" || got[1] != "status" {
		t.Fatalf("unexpected default columns %v", got)
	}

	c.ToggleColumn("email")
	c.ToggleColumn("status")
	got := c.VisibleColumns()
	if len(got) != 2 || got[0] != "name" || got[1] != "email" {
		t.Errorf("expected [name email], got %v", got)
	}

	if f.fetchCount() != 0 {
		t.Errorf("column toggles must not fetch, got %d fetches", f.fetchCount())
	}
}

func TestController_EmptyListHasNoPagination(t *testing.T) {
	f := &fakeBackend{total: 0, pages: 0}
	c := newTestController(f)
	defer c.Close()

	c.Refresh()
	waitFetches(t, c, f, 1)

	if c.Total() != 0 {
		t.Fatalf("expected total 0, got %d", c.Total())
	}
	if window := PageWindow(1, c.TotalPages()); window != nil {
		t.Errorf("total=0 must render no pagination, got %v", window)
	}
}
