// ABOUTME: Normalization adapter for heterogeneous list payloads
// ABOUTME: Folds the backend's response shapes into one canonical page

package client

import (
	"encoding/json"
	"fmt"
)

// Page is the canonical list result every controller consumes, regardless
// of which of the backend's response shapes produced it.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// pageMeta mirrors the separate pagination object some resources return
type pageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// envelope is the outer response wrapper. Depending on the resource, the
// pagination fields live here, in a nested pagination object, or inside
// the data object itself.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *pageMeta       `json:"pagination"`
	Total      *int            `json:"total"`
	Page       *int            `json:"page"`
	TotalPages *int            `json:"totalPages"`
}

// DecodePage normalizes a list response into a Page. The backend returns
// one of three shapes:
//
//	{success, data: {<key>: [...], total, page, limit, totalPages}}
//	{success, data: [...], pagination: {total, page, totalPages}}
//	{success, data: {data: [...], ...}}
//
// key is the per-resource items field (e.g. "agents"). Missing pagination
// metadata falls back to treating the items as the entire result.
func DecodePage[T any](raw json.RawMessage, key string) (*Page[T], error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid list response: %w", err)
	}

	page := &Page[T]{Page: 1}
	if env.Pagination != nil {
		page.Total = env.Pagination.Total
		page.Page = env.Pagination.Page
		page.TotalPages = env.Pagination.TotalPages
	}
	if env.Total != nil {
		page.Total = *env.Total
	}
	if env.Page != nil {
		page.Page = *env.Page
	}
	if env.TotalPages != nil {
		page.TotalPages = *env.TotalPages
	}

	items, meta, err := extractItems(env.Data, key)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &page.Items); err != nil {
		return nil, fmt.Errorf("invalid %s items: %w", key, err)
	}
	if meta != nil {
		if meta.Total != 0 || len(page.Items) == 0 {
			page.Total = meta.Total
		}
		if meta.Page != 0 {
			page.Page = meta.Page
		}
		if meta.TotalPages != 0 {
			page.TotalPages = meta.TotalPages
		}
	}

	if page.Total == 0 && len(page.Items) > 0 {
		page.Total = len(page.Items)
	}
	if page.TotalPages == 0 && page.Total > 0 {
		page.TotalPages = 1
	}
	if page.Page < 1 {
		page.Page = 1
	}
	return page, nil
}

// extractItems walks the data payload down to the items array. A nested
// "data" object is followed one level, covering the data.data shapes.
func extractItems(data json.RawMessage, key string) (json.RawMessage, *pageMeta, error) {
	if len(data) == 0 {
		return json.RawMessage("[]"), nil, nil
	}

	// Flat array
	if data[0] == '[' {
		return data, nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, nil, fmt.Errorf("invalid list data: %w", err)
	}

	meta := &pageMeta{}
	_ = json.Unmarshal(data, meta)

	if items, ok := obj[key]; ok && len(items) > 0 && items[0] == '[' {
		return items, meta, nil
	}
	if inner, ok := obj["data"]; ok && len(inner) > 0 {
		items, innerMeta, err := extractItems(inner, key)
		if err != nil {
			return nil, nil, err
		}
		if innerMeta != nil {
			return items, innerMeta, nil
		}
		return items, meta, nil
	}

	return nil, nil, fmt.Errorf("list response has no %q items", key)
}

// DecodeItem normalizes a single-record response, accepting both
// {data: {...}} and {data: {<key>: {...}}}.
func DecodeItem[T any](raw json.RawMessage, key string) (*T, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}

	data := env.Data
	if len(data) == 0 {
		return nil, fmt.Errorf("response has no data")
	}

	if data[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err == nil {
			if nested, ok := obj[key]; ok && len(nested) > 0 && nested[0] == '{' {
				data = nested
			}
		}
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", key, err)
	}
	return &item, nil
}
