package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/platform/obs"
)

// CSVPlaceSource reads catalog rows from one or more CSV files with a header
// row. Files are read in the given order so later files override earlier
// ones when loaded into a catalog.
type CSVPlaceSource struct {
	Paths []string
}

func NewCSVPlaceSource(paths ...string) *CSVPlaceSource {
	return &CSVPlaceSource{Paths: paths}
}

// NewDirectorySource collects every *.csv file (extension matched
// case-insensitively) in dir, sorted by file name.
func NewDirectorySource(dir string) (*CSVPlaceSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("csv directory source: read dir %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, filepath.Join(dir, n))
	}
	return NewCSVPlaceSource(paths...), nil
}

func (s *CSVPlaceSource) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "csv.ListPlaces")(&err)

	places := make([]domain.Place, 0, 256)
	for _, path := range s.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			if p, ok := catalog.ParseRecord(r); ok {
				places = append(places, p)
			}
		}
	}
	return places, nil
}

// ReadFile reads every row of a CSV file keyed by its header.
func ReadFile(path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses CSV with a header row. Short rows leave the missing
// columns empty, extra cells are ignored and unparsable rows are skipped.
func ReadRecords(r io.Reader) ([]catalog.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []catalog.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	records := make([]catalog.Record, 0, 64)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			// A malformed row is dropped; ingestion carries on with the next one.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		rec := make(catalog.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
