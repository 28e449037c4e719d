// Package csvfile reads ad platform exports from CSV files. It declares
// the column layout of every supported export, validates it once when the
// header is read, coerces metric cells and applies the cleaning rule.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"adkpi/internal/core/domain"
)

// Table is a raw CSV file: a header and the rows below it. Rows may be
// shorter than the header; missing cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses CSV from r. The first record is the header; a UTF-8
// byte order mark in front of it is dropped.
func ReadTable(ctx context.Context, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	t := &Table{Header: header}
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if blank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadFile opens path and parses it with ReadTable. A missing file is
// reported as domain.ErrSourceNotFound.
func ReadFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write encodes t as CSV.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteFile writes t to path, replacing any existing file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = t.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Column returns the index of the named column or -1. Names are compared
// case-insensitively after trimming.
func (t *Table) Column(name string) int {
	want := normalize(name)
	for i, h := range t.Header {
		if normalize(h) == want {
			return i
		}
	}
	return -1
}

// cell returns row[i] trimmed, or "" when the row is too short or i < 0.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
