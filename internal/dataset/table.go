package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row maps column name to raw cell text.
type Row map[string]string

// Clone returns a shallow copy of the row so derived fields can be added
// without touching the loaded table.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is one loaded dataset. Rows are read-only once loaded.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// ReadOptions controls table parsing.
type ReadOptions struct {
	// Delimiter for CSV. If 0, sniffed from the name (".tsv" -> tab, else comma).
	Delimiter rune
	// Sheet selects the worksheet of an .xlsx source. Empty means the first.
	Sheet string
}

// ReadCSV parses a header row plus data rows. Blank lines are skipped and
// short records are padded with empty cells.
func ReadCSV(r io.Reader, name string, opt ReadOptions) (*Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(name)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{Name: name}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := headerColumns(header)
	t := &Table{Name: name, Header: cols}
	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++
		t.appendRecord(rec)
	}
	return t, nil
}

func headerColumns(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cols[i] = h
	}
	return cols
}

// appendRecord adds rec as a row keyed by the header. Blank records are
// skipped and short ones padded.
func (t *Table) appendRecord(rec []string) {
	if isBlank(rec) {
		return
	}
	row := make(Row, len(t.Header))
	for j, c := range t.Header {
		if c == "" {
			continue
		}
		if j < len(rec) {
			row[c] = rec[j]
		} else {
			row[c] = ""
		}
	}
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// MissingColumns returns the subset of cols absent from the header.
func (t *Table) MissingColumns(cols ...string) []string {
	have := make(map[string]struct{}, len(t.Header))
	for _, h := range t.Header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func sniffDelimiter(name string) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	return ','
}
