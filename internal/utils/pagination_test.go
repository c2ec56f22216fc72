package utils

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		page       int
		pageSize   int
		wantPage   int
		wantSize   int
		wantOffset int
		wantPages  int64
	}{
		{"empty table", 0, 1, 10, 1, 10, 0, 0},
		{"empty table ignores requested page", 0, 7, 25, 7, 25, 150, 0},
		{"first page", 25, 1, 10, 1, 10, 0, 3},
		{"last partial page", 25, 3, 10, 3, 10, 20, 3},
		{"page beyond range keeps totals", 25, 4, 10, 4, 10, 30, 3},
		{"exact division", 30, 2, 10, 2, 10, 10, 3},
		{"single item", 1, 1, 10, 1, 10, 0, 1},
		{"zero page clamps to one", 25, 0, 10, 1, 10, 0, 3},
		{"negative page clamps to one", 25, -3, 10, 1, 10, 0, 3},
		{"zero size falls back to default", 25, 2, 0, 2, DefaultPageSize, 10, 3},
		{"negative size falls back to default", 25, 1, -5, 1, DefaultPageSize, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.totalItems, tt.page, tt.pageSize)

			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.wantSize {
				t.Errorf("PageSize = %d, want %d", got.PageSize, tt.wantSize)
			}
			if got.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, tt.wantOffset)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
		})
	}
}
