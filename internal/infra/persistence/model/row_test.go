package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlankRow(t *testing.T) {
	assert.True(t, IsBlankRow(nil))
	assert.True(t, IsBlankRow([]any{}))
	assert.True(t, IsBlankRow([]any{""}))
	assert.True(t, IsBlankRow([]any{"", "", ""}))
	assert.False(t, IsBlankRow([]any{"", "Kopi Nako", ""}))
}

func TestCellText_CoercesNonStrings(t *testing.T) {
	assert.Equal(t, "kafe", CellText("kafe"))
	assert.Equal(t, "", CellText(nil))
	assert.Equal(t, "42", CellText(42))
	assert.Equal(t, "true", CellText(true))
}

func TestCafeRowFromCells_TooShort(t *testing.T) {
	_, err := CafeRowFromCells([]any{"id", "name", "address"})

	require.Error(t, err)

	var tooShort *RowTooShortError
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, "cafe", tooShort.Sheet)
	assert.Equal(t, CafeColumnCount, tooShort.Want)
	assert.Equal(t, 3, tooShort.Got)
}

func TestCafeRowFromCells_MapsPositionally(t *testing.T) {
	cells := make([]any, CafeColumnCount)
	for i := range cells {
		cells[i] = ""
	}
	cells[1] = "Kopi Tuli"
	cells[5] = "Jakarta"
	cells[17] = "2026-01-02T15:04:05Z"

	row, err := CafeRowFromCells(cells)

	require.NoError(t, err)
	assert.Equal(t, "Kopi Tuli", row.Name)
	assert.Equal(t, "Jakarta", row.City)
	assert.Equal(t, "2026-01-02T15:04:05Z", row.UpdatedAt)
}

func TestCafeRow_CellsRoundTrip(t *testing.T) {
	row := &CafeRow{
		ID:        "b1946ac9-2ea2-4be5-9afa-c0a8d8f5e6a1",
		Name:      "Titik Temu",
		City:      "Bandung",
		District:  "Dago",
		LoveCount: "12",
	}

	cells := row.Cells()
	require.Len(t, cells, CafeColumnCount)

	back, err := CafeRowFromCells(cells)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}

func TestRatingRowFromCells_TooShort(t *testing.T) {
	_, err := RatingRowFromCells([]any{"id"})

	var tooShort *RowTooShortError
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, "rating", tooShort.Sheet)
	assert.Equal(t, RatingColumnCount, tooShort.Want)
}

func TestRatingRow_CellsRoundTrip(t *testing.T) {
	row := &RatingRow{
		ID:        "7a9d2a44-9a34-4ccd-a54d-2a1f7f0c3f10",
		CafeID:    "b1946ac9-2ea2-4be5-9afa-c0a8d8f5e6a1",
		SessionID: "sess-abc",
		LoveGiven: "true",
		RatedAt:   "2026-02-01T08:00:00Z",
	}

	cells := row.Cells()
	require.Len(t, cells, RatingColumnCount)

	back, err := RatingRowFromCells(cells)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}
