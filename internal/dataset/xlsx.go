package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// IsWorkbook reports whether name looks like an Excel workbook.
func IsWorkbook(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".xlsx")
}

// ReadXLSX reads one worksheet as a table. The first non-empty row is the
// header. Cells are taken as displayed text, so numbers keep the workbook's
// formatting and go through the same coercion as CSV cells.
func ReadXLSX(r io.Reader, name string, opt ReadOptions) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return &Table{Name: name}, nil
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s (available: %s)",
			sheet, name, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return &Table{Name: name}, nil
	}
	t := &Table{Name: name, Header: headerColumns(rows[start])}
	for _, rec := range rows[start+1:] {
		t.appendRecord(rec)
	}
	return t, nil
}
