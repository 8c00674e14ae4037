package paging

import (
	"encoding/json"
	"math"
	"testing"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginatorMiddlePage(t *testing.T) {
	p := NewPaginator(intRange(10), 2, 3)

	if len(p.Items) != 3 || p.Items[0] != 4 || p.Items[1] != 5 || p.Items[2] != 6 {
		t.Fatalf("page 2 of size 3 over [1..10] = %v, want [4 5 6]", p.Items)
	}
	if p.Total != 10 {
		t.Errorf("Total = %d, want 10", p.Total)
	}
	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if !p.HasNext() {
		t.Error("HasNext() = false, want true")
	}
	if !p.HasPrev() {
		t.Error("HasPrev() = false, want true")
	}
}

func TestPaginatorLastPageRemainder(t *testing.T) {
	p := NewPaginator(intRange(10), 4, 3)

	if len(p.Items) != 1 || p.Items[0] != 10 {
		t.Fatalf("last page = %v, want [10]", p.Items)
	}
	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if p.HasNext() {
		t.Error("HasNext() on last page = true, want false")
	}
	if !p.HasPrev() {
		t.Error("HasPrev() on last page = false, want true")
	}
}

func TestPaginatorPageBeyondEnd(t *testing.T) {
	p := NewPaginator(intRange(10), 5, 3)

	if p.Items == nil {
		t.Fatal("out-of-range page should yield empty slice, not nil")
	}
	if len(p.Items) != 0 {
		t.Fatalf("out-of-range page items = %v, want empty", p.Items)
	}
	if p.HasNext() {
		t.Error("HasNext() beyond last page = true, want false")
	}
}

func TestPaginatorHugePageYieldsEmpty(t *testing.T) {
	// Page numbers large enough that (page-1)*pageSize would overflow must
	// still resolve to an empty page, not a panic.
	for _, page := range []int{1 << 62, math.MaxInt} {
		p := NewPaginator(intRange(10), page, 20)
		if p.Items == nil || len(p.Items) != 0 {
			t.Fatalf("page %d items = %v, want empty", page, p.Items)
		}
		if p.HasNext() {
			t.Errorf("HasNext() for page %d = true, want false", page)
		}
		if !p.HasPrev() {
			t.Errorf("HasPrev() for page %d = false, want true", page)
		}
	}
}

func TestPaginatorEmptyCollection(t *testing.T) {
	p := NewPaginator([]int{}, 1, 20)

	if len(p.Items) != 0 {
		t.Fatalf("items = %v, want empty", p.Items)
	}
	if p.Total != 0 {
		t.Errorf("Total = %d, want 0", p.Total)
	}
	if p.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages)
	}
	if p.HasNext() || p.HasPrev() {
		t.Error("empty collection should have neither next nor prev page")
	}
}

func TestPaginatorTotalPagesCeiling(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
		{10, 3, 4},
		{7, 1, 7},
	}
	for _, c := range cases {
		p := NewPaginator(intRange(c.total), 1, c.pageSize)
		if p.TotalPages != c.want {
			t.Errorf("TotalPages for total=%d pageSize=%d = %d, want %d",
				c.total, c.pageSize, p.TotalPages, c.want)
		}
	}
}

func TestPaginatorFullPagesHavePageSizeItems(t *testing.T) {
	const n, size = 25, 7
	p := NewPaginator(intRange(n), 1, size)
	for page := 1; page <= p.TotalPages; page++ {
		pp := NewPaginator(intRange(n), page, size)
		want := size
		if page == pp.TotalPages {
			want = n - (pp.TotalPages-1)*size
		}
		if len(pp.Items) != want {
			t.Errorf("page %d: len(items) = %d, want %d", page, len(pp.Items), want)
		}
	}
}

func TestPaginatorBoundaryQueries(t *testing.T) {
	first := NewPaginator(intRange(30), 1, 10)
	if first.HasPrev() {
		t.Error("page 1 should not have prev")
	}
	if !first.HasNext() {
		t.Error("page 1 of 3 should have next")
	}

	last := NewPaginator(intRange(30), 3, 10)
	if last.HasNext() {
		t.Error("last page should not have next")
	}

	single := NewPaginator(intRange(5), 1, 10)
	if single.HasNext() || single.HasPrev() {
		t.Error("single-page collection should have neither next nor prev")
	}
}

func TestPaginatorClampsInvalidInput(t *testing.T) {
	p := NewPaginator(intRange(10), 0, 3)
	if p.Page != 1 {
		t.Errorf("page below 1 should clamp to 1, got %d", p.Page)
	}
	if len(p.Items) != 3 || p.Items[0] != 1 {
		t.Errorf("clamped page should slice from start, got %v", p.Items)
	}

	p = NewPaginator(intRange(10), -5, 3)
	if p.Page != 1 {
		t.Errorf("negative page should clamp to 1, got %d", p.Page)
	}

	p = NewPaginator(intRange(10), 1, 0)
	if p.PageSize != DefaultPageSize {
		t.Errorf("zero page size should fall back to default, got %d", p.PageSize)
	}
}

func TestPaginatorDoesNotAliasInput(t *testing.T) {
	items := intRange(10)
	p := NewPaginator(items, 1, 3)
	p.Items[0] = 99
	if items[0] != 1 {
		t.Fatal("mutating paginator items should not mutate the input")
	}
}

func TestPaginatorOffset(t *testing.T) {
	p := NewPaginator(intRange(100), 3, 25)
	if got := p.Offset(); got != 50 {
		t.Fatalf("Offset() = %d, want 50", got)
	}
}

func TestPaginatorGenericOverStructs(t *testing.T) {
	type record struct {
		ID   string
		Name string
	}
	items := []record{{"a", "one"}, {"b", "two"}, {"c", "three"}}
	p := NewPaginator(items, 2, 2)
	if len(p.Items) != 1 || p.Items[0].ID != "c" {
		t.Fatalf("page 2 = %v, want [{c three}]", p.Items)
	}
}

func TestPaginatorJSONShape(t *testing.T) {
	b, err := json.Marshal(NewPaginator(intRange(10), 2, 3))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, field := range []string{"items", "total", "page", "page_size", "total_pages"} {
		if _, ok := got[field]; !ok {
			t.Errorf("paginated payload missing field %q", field)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want Params
	}{
		{Params{}, Params{Page: 1, PageSize: DefaultPageSize}},
		{Params{Page: 3, PageSize: 50}, Params{Page: 3, PageSize: 50}},
		{Params{Page: -1, PageSize: 0}, Params{Page: 1, PageSize: DefaultPageSize}},
		{Params{Page: 1, PageSize: 1000}, Params{Page: 1, PageSize: DefaultPageSize}},
		{Params{Page: 1, PageSize: MaxPageSize}, Params{Page: 1, PageSize: MaxPageSize}},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
