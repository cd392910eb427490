package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"seoulmate/domain"
	"seoulmate/pkg/logger"
	"seoulmate/pkg/metrics"
)

type CSVConfig struct {
	// Candidate file locations, tried in order; the first existing
	// file is parsed.
	Paths []string

	// CacheTTL > 0 keeps the parsed rows in memory between requests
	// and reloads after expiry. 0 re-reads the file on every call.
	CacheTTL time.Duration
}

type CSVRepository struct {
	cfg CSVConfig

	mu       sync.RWMutex
	cached   []map[string]string
	loadedAt time.Time
}

func NewCSVRepository(cfg CSVConfig) *CSVRepository {
	return &CSVRepository{cfg: cfg}
}

// LoadRows returns the dataset as ordered header-keyed rows. Short rows
// are padded with empty strings (never rejected), blank lines skipped,
// quoted fields resolved with quotes stripped.
func (r *CSVRepository) LoadRows(ctx context.Context) ([]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if r.cfg.CacheTTL > 0 {
		r.mu.RLock()
		if r.cached != nil && time.Since(r.loadedAt) < r.cfg.CacheTTL {
			rows := r.cached
			r.mu.RUnlock()
			return rows, nil
		}
		r.mu.RUnlock()
	}

	rows, err := r.loadFromDisk()
	if err != nil {
		return nil, err
	}

	if r.cfg.CacheTTL > 0 {
		r.mu.Lock()
		r.cached = rows
		r.loadedAt = time.Now()
		r.mu.Unlock()
	}

	return rows, nil
}

func (r *CSVRepository) loadFromDisk() ([]map[string]string, error) {
	path, err := r.resolvePath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	metrics.DatasetReloadTotal.Inc()
	logger.Debug("dataset loaded", "path", path, "rows", len(rows))

	return rows, nil
}

// resolvePath returns the first candidate path that exists.
func (r *CSVRepository) resolvePath() (string, error) {
	for _, p := range r.cfg.Paths {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", domain.ErrDataNotFound
}

func parseCSV(f io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows narrower than the header are padded below
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyDataset
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(header[i]), `"`))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// malformed row: skip, keep parsing
			continue
		}
		if isBlank(record) {
			continue
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			val := ""
			if i < len(record) {
				val = strings.TrimSpace(strings.Trim(strings.TrimSpace(record[i]), `"`))
			}
			row[col] = val
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
