package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seoulmate/domain"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRows(t *testing.T) {
	path := writeDataset(t, "hotspots.csv", `핫스팟명,특화업종,특화비율,변동계수(%)
강남역,"한식,카페",60.0,15.2
홍대 관광특구,카페,55.0,17.1
`)
	repo := NewCSVRepository(CSVConfig{Paths: []string{path}})

	rows, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["핫스팟명"] != "강남역" {
		t.Errorf("name = %q", rows[0]["핫스팟명"])
	}
	if rows[0]["특화업종"] != "한식,카페" {
		t.Errorf("quoted field = %q, want comma kept inside quotes", rows[0]["특화업종"])
	}
	if rows[1]["변동계수(%)"] != "17.1" {
		t.Errorf("cv = %q", rows[1]["변동계수(%)"])
	}
}

func TestLoadRowsShortAndBlankRows(t *testing.T) {
	path := writeDataset(t, "ragged.csv", `지역명,특화업종,특화비율
강남역,한식
,,
신촌,카페,40.0,extra
`)
	repo := NewCSVRepository(CSVConfig{Paths: []string{path}})

	rows, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank line skipped)", len(rows))
	}

	// short row padded with empty strings
	if rows[0]["지역명"] != "강남역" || rows[0]["특화업종"] != "한식" {
		t.Errorf("short row = %v", rows[0])
	}
	if v, ok := rows[0]["특화비율"]; !ok || v != "" {
		t.Errorf("missing trailing column = %q (present=%v), want empty string", v, ok)
	}

	// overlong row keeps the header's columns
	if rows[1]["특화비율"] != "40.0" {
		t.Errorf("overlong row = %v", rows[1])
	}
}

func TestLoadRowsMissingFile(t *testing.T) {
	repo := NewCSVRepository(CSVConfig{Paths: []string{filepath.Join(t.TempDir(), "absent.csv")}})
	_, err := repo.LoadRows(context.Background())
	if !errors.Is(err, domain.ErrDataNotFound) {
		t.Errorf("err = %v, want ErrDataNotFound", err)
	}
}

func TestLoadRowsEmptyDataset(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		path := writeDataset(t, "empty.csv", "")
		repo := NewCSVRepository(CSVConfig{Paths: []string{path}})
		_, err := repo.LoadRows(context.Background())
		if !errors.Is(err, domain.ErrEmptyDataset) {
			t.Errorf("err = %v, want ErrEmptyDataset", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		path := writeDataset(t, "header.csv", "지역명,특화업종\n")
		repo := NewCSVRepository(CSVConfig{Paths: []string{path}})
		_, err := repo.LoadRows(context.Background())
		if !errors.Is(err, domain.ErrEmptyDataset) {
			t.Errorf("err = %v, want ErrEmptyDataset", err)
		}
	})
}

func TestResolvePathOrder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "primary.csv")
	fallback := writeDataset(t, "fallback.csv", "지역명\n강남역\n")
	repo := NewCSVRepository(CSVConfig{Paths: []string{missing, fallback}})

	rows, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(rows) != 1 || rows[0]["지역명"] != "강남역" {
		t.Errorf("fallback path not used: %v", rows)
	}
}

func TestLoadRowsCache(t *testing.T) {
	path := writeDataset(t, "cached.csv", "지역명\n강남역\n")
	repo := NewCSVRepository(CSVConfig{Paths: []string{path}, CacheTTL: time.Minute})

	first, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}

	// replace the file; the cached rows must keep serving within the TTL
	if err := os.WriteFile(path, []byte("지역명\n홍대\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if second[0]["지역명"] != first[0]["지역명"] {
		t.Errorf("cache not used: got %q, want %q", second[0]["지역명"], first[0]["지역명"])
	}
}

func TestLoadRowsNoCacheRereads(t *testing.T) {
	path := writeDataset(t, "fresh.csv", "지역명\n강남역\n")
	repo := NewCSVRepository(CSVConfig{Paths: []string{path}})

	if _, err := repo.LoadRows(context.Background()); err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if err := os.WriteFile(path, []byte("지역명\n홍대\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := repo.LoadRows(context.Background())
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if rows[0]["지역명"] != "홍대" {
		t.Errorf("TTL 0 served stale rows: %q", rows[0]["지역명"])
	}
}

func TestLoadRowsCancelledContext(t *testing.T) {
	path := writeDataset(t, "ctx.csv", "지역명\n강남역\n")
	repo := NewCSVRepository(CSVConfig{Paths: []string{path}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.LoadRows(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
