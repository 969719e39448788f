package dataset

// ISOColumn is the join key shared by every dataset.
const ISOColumn = "iso"

// TotalISO marks the world-aggregate pseudo-row.
const TotalISO = "Total"

// excludedISO lists rows that never appear on a map: the world aggregate
// plus Antarctica and Greenland.
var excludedISO = map[string]struct{}{
	TotalISO: {},
	"ATA":    {},
	"GRL":    {},
}

// IsExcluded reports whether iso is an aggregate or excluded territory.
func IsExcluded(iso string) bool {
	_, ok := excludedISO[iso]
	return ok
}

// CountryRows returns the rows that represent mappable countries, in input
// order. The input slice is not modified.
func CountryRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if IsExcluded(r[ISOColumn]) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TotalRow returns the world-aggregate row, if present.
func TotalRow(rows []Row) (Row, bool) {
	for _, r := range rows {
		if r[ISOColumn] == TotalISO {
			return r, true
		}
	}
	return nil, false
}
