package records

import (
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/shopspring/decimal"
)

// NA is shown for missing values.
const NA = "NA"

// Format renders v with a fixed number of decimals, rounding half away
// from zero on the shortest decimal form of the value (1.005 -> "1.01").
func Format(v dataset.Value, decimals int) string {
	if !v.Valid {
		return NA
	}
	return decimal.NewFromFloat(v.Float).StringFixed(int32(decimals))
}

// FormatCI renders a two-decimal interval "[lo, hi]", or "" when either
// bound is missing.
func FormatCI(lo, hi dataset.Value) string {
	if !lo.Valid || !hi.Valid {
		return ""
	}
	return fmt.Sprintf("[%s, %s]", Format(lo, 2), Format(hi, 2))
}
