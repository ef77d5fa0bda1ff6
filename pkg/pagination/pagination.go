// Copyright (c) 2026 CineHub. All rights reserved.

// Package pagination provides shared types and helpers for paged API endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// # Contract
//
// Pages are zero-indexed and have a fixed, system-wide size. Requesting a page
// at or beyond the last page is not an error: it yields an empty item list
// with IsLast set — the deliberate "empty page" policy.
package pagination

import (
	"net/http"
	"strconv"
)

// PageSize is the fixed number of items per page, shared across all paged
// queries in the system.
const PageSize = 10

// Sort holds the parsed page index and ordering from a request's query string.
//
// The OrderBy field is validated against a per-entity whitelist by the domain
// service — an unknown field is a client error, never a silent fallback.
type Sort struct {
	Page      int
	OrderBy   string
	Ascending bool
}

// Offset returns the SQL OFFSET value derived from the zero-based page index.
func (s Sort) Offset() int {
	if s.Page <= 0 {
		return 0
	}
	return s.Page * PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page          int  `json:"page"`
	Size          int  `json:"size"`
	TotalElements int  `json:"total_elements"`
	TotalPages    int  `json:"total_pages"`
	IsLast        bool `json:"is_last"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(totalElements / PageSize). IsLast is true on the final
// page and on any out-of-range page (which carries zero items).
func NewMeta(page, totalElements int) Meta {
	totalPages := (totalElements + PageSize - 1) / PageSize

	return Meta{
		Page:          page,
		Size:          PageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		IsLast:        page >= totalPages-1,
	}
}

// SortFromRequest parses "page", "orderBy" and "ascending" query parameters.
//
// The page index defaults to 0; orderBy defaults to the provided entity
// default so that unsorted requests remain deterministic. A negative page is
// passed through untouched — rejecting it is the service's job, and it must
// fail loudly rather than be clamped here.
func SortFromRequest(r *http.Request, defaultOrderBy string) Sort {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	orderBy := query.Get("orderBy")
	if orderBy == "" {
		orderBy = defaultOrderBy
	}

	ascending, _ := strconv.ParseBool(query.Get("ascending"))

	return Sort{Page: page, OrderBy: orderBy, Ascending: ascending}
}
