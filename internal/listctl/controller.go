// ABOUTME: Generic controller for paginated admin list screens
// ABOUTME: Owns query, debounced search, selection, column visibility, and delete flow

package listctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
)

// DefaultDebounce is how long search input must be idle before a fetch
const DefaultDebounce = 500 * time.Millisecond

// Fetcher loads one page of a resource
type Fetcher[T any] func(ctx context.Context, q client.ListQuery) (*client.Page[T], error)

// Deleter removes a single record
type Deleter func(ctx context.Context, id string) error

// BulkDeleter removes many records in one call
type BulkDeleter func(ctx context.Context, ids []string) error

// DeleteTarget is the pending delete a confirmation modal is showing.
// Created when a delete is requested, destroyed on cancel or completion.
type DeleteTarget struct {
	Bulk bool
	IDs  []string
}

// Config wires a Controller to one resource
type Config[T any] struct {
	Fetch      Fetcher[T]
	DeleteOne  Deleter
	DeleteMany BulkDeleter // optional; absence always uses per-id deletes
	ID         func(T) string

	Columns        []string // all column ids, in display order
	DefaultVisible []string // per-resource default subset

	Debounce time.Duration // 0 means DefaultDebounce
	OnChange func()        // invoked after any async state change
}

// Controller is the list-page state machine shared by every admin listing
// screen. All methods are safe for concurrent use; fetches are async and
// a superseded fetch can never overwrite a newer one's results.
type Controller[T any] struct {
	cfg Config[T]

	mu         sync.Mutex
	query      client.ListQuery
	items      []T
	total      int
	totalPages int
	loading    bool
	lastErr    error

	visible  map[string]bool
	selected map[string]bool
	target   *DeleteTarget

	pendingSearch string
	debounce      *time.Timer

	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// New creates a controller with the resource's default query and columns
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}

	visible := make(map[string]bool, len(cfg.DefaultVisible))
	for _, col := range cfg.DefaultVisible {
		visible[col] = true
	}

	return &Controller[T]{
		cfg:      cfg,
		query:    client.ListQuery{Page: 1, Limit: 10, Filters: map[string]string{}},
		visible:  visible,
		selected: map[string]bool{},
	}
}

// --- query ---

// Query returns a snapshot of the current list query. The filters map
// is copied, so mutating the snapshot never touches controller state.
func (c *Controller[T]) Query() client.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotQuery()
}

// snapshotQuery copies the query with a detached filters map.
// Caller holds the lock.
func (c *Controller[T]) snapshotQuery() client.ListQuery {
	q := c.query
	q.Filters = make(map[string]string, len(c.query.Filters))
	for k, v := range c.query.Filters {
		q.Filters[k] = v
	}
	return q
}

// SetPage moves to the given page and refetches
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if c.totalPages > 0 && page > c.totalPages {
		page = c.totalPages
	}
	if page == c.query.Page {
		c.mu.Unlock()
		return
	}
	c.query.Page = page
	c.mu.Unlock()
	c.Refresh()
}

// SetLimit changes the page size, returning to page 1
func (c *Controller[T]) SetLimit(limit int) {
	c.mu.Lock()
	q := client.ListQuery{Limit: limit}.Normalized()
	if q.Limit == c.query.Limit {
		c.mu.Unlock()
		return
	}
	c.query.Limit = q.Limit
	c.query.Page = 1
	c.mu.Unlock()
	c.Refresh()
}

// SetSearch records a search keystroke. Rapid calls coalesce: the fetch
// fires only after the debounce window passes without another call, and
// a changed effective search resets the page to 1.
func (c *Controller[T]) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.pendingSearch = search
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.cfg.Debounce, c.applyPendingSearch)
}

func (c *Controller[T]) applyPendingSearch() {
	c.mu.Lock()
	if c.closed || c.pendingSearch == c.query.Search {
		c.mu.Unlock()
		return
	}
	c.query.Search = c.pendingSearch
	c.query.Page = 1
	c.mu.Unlock()
	c.Refresh()
}

// SetFilter sets an entity-specific filter and resets to page 1.
// Filters apply immediately; only typed search is debounced.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	if c.query.Filters[key] == value {
		c.mu.Unlock()
		return
	}
	if value == "" {
		delete(c.query.Filters, key)
	} else {
		c.query.Filters[key] = value
	}
	c.query.Page = 1
	c.mu.Unlock()
	c.Refresh()
}

// --- fetching ---

// Refresh starts an async fetch for the current query. Any in-flight
// fetch is canceled; if its result still arrives it is discarded, so a
// slow stale response can never overwrite fresher rows.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	// Snapshot so a SetFilter racing the fetch cannot mutate the map
	// the fetcher is reading.
	q := c.snapshotQuery()
	c.loading = true
	c.mu.Unlock()
	c.notify()

	go func() {
		page, err := c.cfg.Fetch(ctx, q)

		c.mu.Lock()
		if seq != c.seq || c.closed {
			c.mu.Unlock()
			return
		}
		c.loading = false
		if err != nil {
			// Keep the last-good rows; only this operation fails.
			if !errors.Is(err, context.Canceled) {
				c.lastErr = err
				slog.Debug("list fetch failed", "error", err)
			}
		} else {
			c.lastErr = nil
			c.items = page.Items
			c.total = page.Total
			c.totalPages = page.TotalPages
			c.pruneSelection()
		}
		c.mu.Unlock()
		c.notify()
	}()
}

// pruneSelection drops selected ids that are no longer in the list.
// Caller holds the lock.
func (c *Controller[T]) pruneSelection() {
	if len(c.selected) == 0 {
		return
	}
	present := make(map[string]bool, len(c.items))
	for _, item := range c.items {
		present[c.cfg.ID(item)] = true
	}
	for id := range c.selected {
		if !present[id] {
			delete(c.selected, id)
		}
	}
}

// --- snapshot accessors ---

// Items returns a copy of the current rows
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the server-reported total row count
func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// TotalPages returns the server-reported page count
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// Loading reports whether a fetch is in flight
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last fetch error, or nil after a successful fetch
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// --- column visibility ---

// ToggleColumn flips a column's visibility. Client-side only: toggling
// never triggers a refetch.
func (c *Controller[T]) ToggleColumn(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible[id] = !c.visible[id]
}

// VisibleColumns returns the visible column ids in display order
func (c *Controller[T]) VisibleColumns() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, id := range c.cfg.Columns {
		if c.visible[id] {
			out = append(out, id)
		}
	}
	return out
}

// --- selection ---

// ToggleSelect flips one row in the multi-select set
func (c *Controller[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected[id] {
		delete(c.selected, id)
	} else {
		c.selected[id] = true
	}
}

// SelectedIDs returns the selected row ids in current row order
func (c *Controller[T]) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, item := range c.items {
		if id := c.cfg.ID(item); c.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// ClearSelection empties the multi-select set
func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = map[string]bool{}
}

// --- delete flow ---

// RequestDelete opens the confirmation flow for a single row
func (c *Controller[T]) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = &DeleteTarget{IDs: []string{id}}
}

// RequestBulkDelete opens the confirmation flow for the selection.
// No-op when nothing is selected.
func (c *Controller[T]) RequestBulkDelete() {
	ids := c.SelectedIDs()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(ids) == 0 {
		return
	}
	c.target = &DeleteTarget{Bulk: true, IDs: ids}
}

// PendingDelete returns the delete the confirmation modal should show
func (c *Controller[T]) PendingDelete() *DeleteTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// CancelDelete closes the confirmation flow without deleting
func (c *Controller[T]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = nil
}

// ConfirmDelete executes the pending delete. Successful single deletes
// remove the row optimistically and decrement the total. Bulk deletes
// prefer the bulk endpoint and fall back to sequential per-id deletes
// when the backend has none; the selection clears only after every id
// has resolved, and the total drops only by the ids that succeeded.
func (c *Controller[T]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	target := c.target
	c.target = nil
	c.mu.Unlock()

	if target == nil {
		return nil
	}
	if target.Bulk {
		return c.bulkDelete(ctx, target.IDs)
	}
	return c.singleDelete(ctx, target.IDs[0])
}

func (c *Controller[T]) singleDelete(ctx context.Context, id string) error {
	if err := c.cfg.DeleteOne(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	c.removeRows(map[string]bool{id: true})
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Controller[T]) bulkDelete(ctx context.Context, ids []string) error {
	deleted, err := c.deleteIDs(ctx, ids)

	c.mu.Lock()
	c.removeRows(deleted)
	c.selected = map[string]bool{}
	c.mu.Unlock()
	c.notify()
	return err
}

// deleteIDs removes ids via the bulk endpoint, falling back to one call
// per id when the bulk endpoint is missing (404). Returns the set that
// actually deleted.
func (c *Controller[T]) deleteIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	deleted := make(map[string]bool, len(ids))

	if c.cfg.DeleteMany != nil {
		err := c.cfg.DeleteMany(ctx, ids)
		if err == nil {
			for _, id := range ids {
				deleted[id] = true
			}
			return deleted, nil
		}
		if !client.IsNotFound(err) {
			return deleted, err
		}
		slog.Debug("bulk endpoint missing, falling back to per-id deletes", "count", len(ids))
	}

	var failed []string
	for _, id := range ids {
		if err := c.cfg.DeleteOne(ctx, id); err != nil {
			failed = append(failed, id)
			continue
		}
		deleted[id] = true
	}
	if len(failed) > 0 {
		return deleted, fmt.Errorf("failed to delete %d of %d records", len(failed), len(ids))
	}
	return deleted, nil
}

// removeRows drops the given ids from the in-memory list and total.
// Caller holds the lock.
func (c *Controller[T]) removeRows(ids map[string]bool) {
	if len(ids) == 0 {
		return
	}
	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if ids[c.cfg.ID(item)] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.total -= removed
	if c.total < 0 {
		c.total = 0
	}
}

// --- lifecycle ---

// Close cancels any in-flight fetch and stops the debounce timer so it
// cannot fire after teardown
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.debounce != nil {
		c.debounce.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controller[T]) notify() {
	if c.cfg.OnChange != nil {
		c.cfg.OnChange()
	}
}
