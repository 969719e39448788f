// Package export writes assembled panel records to spreadsheet workbooks.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/carbonmap/internal/records"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// RecordSheet lays out records as ISO, Country, value, bounds, CI and bin.
func RecordSheet(name, valueHeader string, recs []records.Record) Sheet {
	s := Sheet{
		Name:   name,
		Header: []string{"ISO", "Country", valueHeader, "Lower (q17)", "Upper (q83)", "66% CI", "Bin"},
		Rows:   make([][]any, 0, len(recs)),
	}
	for _, r := range recs {
		s.Rows = append(s.Rows, []any{r.ISO, r.Country, cell(r.Value.Ptr()), cell(r.Lower.Ptr()), cell(r.Upper.Ptr()), r.CI, r.Bin})
	}
	return s
}

// cell leaves missing values as empty cells.
func cell(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// WriteXLSX writes sheets to path in order. The default sheet is renamed to
// the first sheet.
func WriteXLSX(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return errors.New("export: no sheets")
	}
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{}
	for i, s := range sheets {
		name := sheetName(s.Name, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
		for c, h := range s.Header {
			ref, _ := excelize.CoordinatesToCellName(c+1, 1)
			if err := f.SetCellValue(name, ref, h); err != nil {
				return err
			}
		}
		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				ref, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if err := f.SetCellValue(name, ref, v); err != nil {
					return err
				}
			}
		}
		if len(s.Header) > 0 {
			last, _ := excelize.ColumnNumberToName(len(s.Header))
			_ = f.SetColWidth(name, "A", last, 16)
		}
	}
	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// sheetName strips characters Excel rejects, truncates to 31 runes and
// de-duplicates.
func sheetName(s string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, s)
	if clean == "" {
		clean = "Sheet"
	}
	rs := []rune(clean)
	if len(rs) > 31 {
		rs = rs[:31]
	}
	name := string(rs)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := rs
		if len(base)+len([]rune(suffix)) > 31 {
			base = base[:31-len([]rune(suffix))]
		}
		name = string(base) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
