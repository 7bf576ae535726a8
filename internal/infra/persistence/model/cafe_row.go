package model

// CafeColumnCount is the fixed width of the Cafes sheet. Column order is the
// wire contract; reordering columns breaks every deployed client.
const CafeColumnCount = 18

// CafeRow is the spreadsheet-facing shape of a cafe: one string field per
// column, in sheet order. All parsing and validation happens in the codec;
// this struct only carries raw cell text.
type CafeRow struct {
	ID                 string // column A
	Name               string
	Address            string
	Latitude           string
	Longitude          string
	City               string
	District           string // empty when absent
	WifiSpeed          string
	ComfortRating      string
	NoiseLevel         string
	Amenities          string // JSON array of tags
	OperatingHours     string // JSON weekday schedule
	Images             string // JSON array of image objects
	LoveCount          string
	ContributorID      string
	VerificationStatus string
	CreatedAt          string // RFC3339
	UpdatedAt          string // column R, RFC3339
}

// Cells flattens the row into the cell list a Sheets values call expects.
func (r *CafeRow) Cells() []any {
	return []any{
		r.ID,
		r.Name,
		r.Address,
		r.Latitude,
		r.Longitude,
		r.City,
		r.District,
		r.WifiSpeed,
		r.ComfortRating,
		r.NoiseLevel,
		r.Amenities,
		r.OperatingHours,
		r.Images,
		r.LoveCount,
		r.ContributorID,
		r.VerificationStatus,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// CafeRowFromCells maps one raw sheet row onto a CafeRow. A row narrower
// than the fixed layout fails with RowTooShortError; extra trailing cells
// are ignored.
func CafeRowFromCells(cells []any) (*CafeRow, error) {
	if len(cells) < CafeColumnCount {
		return nil, &RowTooShortError{Sheet: "cafe", Want: CafeColumnCount, Got: len(cells)}
	}

	return &CafeRow{
		ID:                 CellText(cells[0]),
		Name:               CellText(cells[1]),
		Address:            CellText(cells[2]),
		Latitude:           CellText(cells[3]),
		Longitude:          CellText(cells[4]),
		City:               CellText(cells[5]),
		District:           CellText(cells[6]),
		WifiSpeed:          CellText(cells[7]),
		ComfortRating:      CellText(cells[8]),
		NoiseLevel:         CellText(cells[9]),
		Amenities:          CellText(cells[10]),
		OperatingHours:     CellText(cells[11]),
		Images:             CellText(cells[12]),
		LoveCount:          CellText(cells[13]),
		ContributorID:      CellText(cells[14]),
		VerificationStatus: CellText(cells[15]),
		CreatedAt:          CellText(cells[16]),
		UpdatedAt:          CellText(cells[17]),
	}, nil
}
