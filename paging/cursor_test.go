package paging

import (
	"errors"
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 24, 12, 0, 0, 123456789, time.UTC)
	decoded, err := DecodeCursor(EncodeCursor(ts))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.Equal(ts) {
		t.Fatalf("round trip mismatch: got %v, want %v", decoded, ts)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	if _, err := DecodeCursor("not base64 !!!"); err == nil {
		t.Fatal("expected error for invalid cursor")
	}
}

func TestPaginateHasNextPage(t *testing.T) {
	all := intRange(30)
	result, err := Paginate(CursorParams{Limit: 10}, func(cursor string, limit int) ([]int, int, string, error) {
		if limit > len(all) {
			limit = len(all)
		}
		return all[:limit], len(all), "next-token", nil
	})
	if err != nil {
		t.Fatalf("paginate failed: %v", err)
	}
	if len(result.Items) != 10 {
		t.Fatalf("len(items) = %d, want 10", len(result.Items))
	}
	if !result.HasNextPage {
		t.Error("expected HasNextPage with more rows than the limit")
	}
	if result.Total != 30 {
		t.Errorf("Total = %d, want 30", result.Total)
	}
}

func TestPaginateLastPage(t *testing.T) {
	result, err := Paginate(CursorParams{Limit: 10}, func(cursor string, limit int) ([]int, int, string, error) {
		return intRange(4), 4, "", nil
	})
	if err != nil {
		t.Fatalf("paginate failed: %v", err)
	}
	if result.HasNextPage {
		t.Error("expected no next page when fewer rows than the limit")
	}
	if len(result.Items) != 4 {
		t.Errorf("len(items) = %d, want 4", len(result.Items))
	}
}

func TestPaginateNilItemsBecomeEmpty(t *testing.T) {
	result, err := Paginate(CursorParams{Limit: 10}, func(cursor string, limit int) ([]int, int, string, error) {
		return nil, 0, "", nil
	})
	if err != nil {
		t.Fatalf("paginate failed: %v", err)
	}
	if result.Items == nil {
		t.Fatal("items should be an empty slice, not nil")
	}
}

func TestPaginatePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Paginate(CursorParams{Limit: 10}, func(cursor string, limit int) ([]int, int, string, error) {
		return nil, 0, "", boom
	}); err == nil {
		t.Fatal("expected error from paging func")
	}
}

func TestNormalizeCursorParams(t *testing.T) {
	if got := NormalizeCursorParams(CursorParams{Limit: 0}); got.Limit != DefaultPageSize {
		t.Errorf("zero limit should normalize to default, got %d", got.Limit)
	}
	if got := NormalizeCursorParams(CursorParams{Limit: 5000}); got.Limit != DefaultPageSize {
		t.Errorf("oversized limit should normalize to default, got %d", got.Limit)
	}
	if got := NormalizeCursorParams(CursorParams{Limit: 50}); got.Limit != 50 {
		t.Errorf("valid limit should pass through, got %d", got.Limit)
	}
}
