package model

import "fmt"

// RowTooShortError reports a sheet row that carries fewer cells than the
// fixed column layout requires. It is distinct from a schema validation
// failure: the row never made it to field-level checks.
type RowTooShortError struct {
	Sheet string
	Want  int
	Got   int
}

func (e *RowTooShortError) Error() string {
	return fmt.Sprintf("%s row has %d cells, want %d", e.Sheet, e.Got, e.Want)
}

// IsBlankRow reports whether a raw row is structurally empty: no cells at
// all, or every cell rendering to the empty string. The Sheets API returns
// such rows for untouched spreadsheet lines; they are skipped, not errors.
func IsBlankRow(cells []any) bool {
	for _, cell := range cells {
		if CellText(cell) != "" {
			return false
		}
	}

	return true
}

// CellText renders one spreadsheet cell as text. Ranges are read with the
// formatted-value option so cells arrive as strings, but the API type is
// any; non-string values are printed rather than rejected.
func CellText(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
