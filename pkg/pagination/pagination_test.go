// Copyright (c) 2026 CineHub. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinehub/api/pkg/pagination"
)

/*
TestNewMeta verifies total page math and the last-page flag, including the
empty out-of-range page policy.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		totalElements int
		wantPages     int
		wantLast      bool
	}{
		{"empty_dataset", 0, 0, 0, true},
		{"single_partial_page", 0, 7, 1, true},
		{"exact_page_boundary", 0, 10, 1, true},
		{"first_of_three", 0, 23, 3, false},
		{"middle_of_three", 1, 23, 3, false},
		{"last_of_three", 2, 23, 3, true},
		{"out_of_range", 5, 23, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.totalElements)

			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantLast, meta.IsLast)
			assert.Equal(t, pagination.PageSize, meta.Size)
			assert.Equal(t, tt.totalElements, meta.TotalElements)
		})
	}
}

/*
TestSort_Offset checks the SQL OFFSET derivation from the zero-based index.
*/
func TestSort_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Sort{Page: 0}.Offset())
	assert.Equal(t, 10, pagination.Sort{Page: 1}.Offset())
	assert.Equal(t, 30, pagination.Sort{Page: 3}.Offset())
	assert.Equal(t, 0, pagination.Sort{Page: -2}.Offset())
}

/*
TestSortFromRequest covers query parsing defaults and passthrough of negative
pages (validation belongs to the service layer).
*/
func TestSortFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want pagination.Sort
	}{
		{"defaults", "/movies", pagination.Sort{Page: 0, OrderBy: "RATING"}},
		{"explicit", "/movies?page=2&orderBy=RUNTIME&ascending=true", pagination.Sort{Page: 2, OrderBy: "RUNTIME", Ascending: true}},
		{"negative_page_passthrough", "/movies?page=-1", pagination.Sort{Page: -1, OrderBy: "RATING"}},
		{"garbage_page_ignored", "/movies?page=abc", pagination.Sort{Page: 0, OrderBy: "RATING"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, pagination.SortFromRequest(request, "RATING"))
		})
	}
}
