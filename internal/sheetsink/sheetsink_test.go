package sheetsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRow(t *testing.T) {
	assert.Equal(t, 1, nextRow(0), "empty tab starts at the first row")
	assert.Equal(t, 2, nextRow(1), "header-only tab starts at row 2")
	assert.Equal(t, 12, nextRow(11))
}

func TestDataRows(t *testing.T) {
	assert.Equal(t, 0, dataRows(0))
	assert.Equal(t, 0, dataRows(1), "header does not count as data")
	assert.Equal(t, 10, dataRows(11))
}

func TestStartCell(t *testing.T) {
	assert.Equal(t, "Sheet1!A1", startCell("Sheet1", 0))
	assert.Equal(t, "Sheet1!A5", startCell("Sheet1", 4))
	assert.Equal(t, "Trades!A2", startCell("Trades", 1))
}
