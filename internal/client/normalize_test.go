// ABOUTME: Tests for list/item payload normalization
// ABOUTME: Exercises every response shape the backend is known to return

package client

import (
	"encoding/json"
	"testing"
)

func TestDecodePage_KeyedDataObject(t *testing.T) {
	raw := json.RawMessage(`{
		"success": true,
		"data": {
			"developers": [{"_id":"d1","name":"Lodha"},{"_id":"d2","name":"DLF"}],
			"total": 42, "page": 2, "limit": 10, "totalPages": 5
		}
	}`)

	page, err := DecodePage[Developer](raw, "developers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].Name != "Lodha" {
		t.Errorf("unexpected items %+v", page.Items)
	}
	if page.Total != 42 || page.Page != 2 || page.TotalPages != 5 {
		t.Errorf("unexpected meta %+v", page)
	}
}

func TestDecodePage_FlatArrayWithPagination(t *testing.T) {
	raw := json.RawMessage(`{
		"success": true,
		"data": [{"_id":"s1","email":"a@b.c"}],
		"pagination": {"total": 31, "page": 1, "totalPages": 4}
	}`)

	page, err := DecodePage[Subscriber](raw, "subscribers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Email != "a@b.c" {
		t.Errorf("unexpected items %+v", page.Items)
	}
	if page.Total != 31 || page.TotalPages != 4 {
		t.Errorf("unexpected meta %+v", page)
	}
}

func TestDecodePage_NestedDataObject(t *testing.T) {
	raw := json.RawMessage(`{
		"success": true,
		"data": {
			"data": [{"_id":"c1","name":"Lead","email":"l@x.y"}],
			"total": 7, "page": 1, "totalPages": 1
		}
	}`)

	page, err := DecodePage[Contact](raw, "contacts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Lead" {
		t.Errorf("unexpected items %+v", page.Items)
	}
	if page.Total != 7 {
		t.Errorf("expected total 7, got %d", page.Total)
	}
}

func TestDecodePage_NoMetadataFallsBack(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"data":[{"_id":"a1","name":"X","email":"x@y.z"}]}`)

	page, err := DecodePage[Agent](raw, "agents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.TotalPages != 1 || page.Page != 1 {
		t.Errorf("expected single-page fallback, got %+v", page)
	}
}

func TestDecodePage_EmptyList(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"data":{"agents":[],"total":0,"page":1,"totalPages":0}}`)

	page, err := DecodePage[Agent](raw, "agents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 0 || page.TotalPages != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestDecodePage_MissingItems(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"data":{"unexpected":true}}`)

	if _, err := DecodePage[Agent](raw, "agents"); err == nil {
		t.Error("expected error for unrecognized shape")
	}
}

func TestDecodeItem_Shapes(t *testing.T) {
	direct := json.RawMessage(`{"success":true,"data":{"_id":"p1","title":"Sea View Villa"}}`)
	keyed := json.RawMessage(`{"success":true,"data":{"property":{"_id":"p2","title":"City Flat"}}}`)

	p1, err := DecodeItem[Property](direct, "property")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Title != "Sea View Villa" {
		t.Errorf("unexpected item %+v", p1)
	}

	p2, err := DecodeItem[Property](keyed, "property")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Title != "City Flat" {
		t.Errorf("unexpected item %+v", p2)
	}
}

func TestDecodeItem_NoData(t *testing.T) {
	raw := json.RawMessage(`{"success":true}`)
	if _, err := DecodeItem[Property](raw, "property"); err == nil {
		t.Error("expected error for missing data")
	}
}

func TestListQuery_Values(t *testing.T) {
	q := ListQuery{
		Page: 3, Limit: 25, Search: "pune",
		OrderBy: "createdAt", Order: "desc",
		Filters: map[string]string{"status": "active", "empty": ""},
	}

	v := q.Values()
	if v.Get("page") != "3" || v.Get("limit") != "25" {
		t.Errorf("unexpected paging params %v", v)
	}
	if v.Get("search") != "pune" {
		t.Errorf("expected search param, got %v", v)
	}
	if v.Get("orderBy") != "createdAt" || v.Get("order") != "desc" {
		t.Errorf("expected sort params, got %v", v)
	}
	if v.Get("status") != "active" {
		t.Errorf("expected filter param, got %v", v)
	}
	if _, ok := v["empty"]; ok {
		t.Error("empty filters must be omitted")
	}
}

func TestListQuery_Normalized(t *testing.T) {
	tests := []struct {
		in        ListQuery
		wantPage  int
		wantLimit int
	}{
		{ListQuery{}, 1, 10},
		{ListQuery{Page: -2, Limit: 33}, 1, 10},
		{ListQuery{Page: 4, Limit: 100}, 4, 100},
	}

	for _, tt := range tests {
		got := tt.in.Normalized()
		if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
			t.Errorf("Normalized(%+v) = page %d limit %d, want %d/%d",
				tt.in, got.Page, got.Limit, tt.wantPage, tt.wantLimit)
		}
	}
}
