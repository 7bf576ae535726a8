package model

// RatingColumnCount is the fixed width of the Ratings sheet.
const RatingColumnCount = 10

// RatingRow is the spreadsheet-facing shape of a rating. Metric cells stay
// empty when the rating omits that metric; an empty cell round-trips back to
// an omitted field, never to a zero value.
type RatingRow struct {
	ID            string // column A
	CafeID        string
	SessionID     string
	WifiSpeed     string // empty when not rated
	ComfortRating string // empty when not rated
	NoiseLevel    string // empty when not rated
	Comment       string
	Photos        string // JSON array of URLs
	LoveGiven     string // "true" / "false"
	RatedAt       string // column J, RFC3339
}

// Cells flattens the row into the cell list a Sheets values call expects.
func (r *RatingRow) Cells() []any {
	return []any{
		r.ID,
		r.CafeID,
		r.SessionID,
		r.WifiSpeed,
		r.ComfortRating,
		r.NoiseLevel,
		r.Comment,
		r.Photos,
		r.LoveGiven,
		r.RatedAt,
	}
}

// RatingRowFromCells maps one raw sheet row onto a RatingRow. A row narrower
// than the fixed layout fails with RowTooShortError.
func RatingRowFromCells(cells []any) (*RatingRow, error) {
	if len(cells) < RatingColumnCount {
		return nil, &RowTooShortError{Sheet: "rating", Want: RatingColumnCount, Got: len(cells)}
	}

	return &RatingRow{
		ID:            CellText(cells[0]),
		CafeID:        CellText(cells[1]),
		SessionID:     CellText(cells[2]),
		WifiSpeed:     CellText(cells[3]),
		ComfortRating: CellText(cells[4]),
		NoiseLevel:    CellText(cells[5]),
		Comment:       CellText(cells[6]),
		Photos:        CellText(cells[7]),
		LoveGiven:     CellText(cells[8]),
		RatedAt:       CellText(cells[9]),
	}, nil
}
