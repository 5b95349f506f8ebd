package zellaparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/zella-stb/internal/models"
	"fjacquet/zella-stb/internal/stbmapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Open Date,Entry Model,Status,Net P&L,Emotions
2025-01-15 09:30:00,breakers,Win,150,calm
2025-01-10 08:00:00,cisd,Loss,-42.5,anxious
,,,,
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseDropsDatelessRows(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))

	assert.NoError(t, err)
	assert.Len(t, records, 2, "footer row without a date must be dropped")
	for _, rec := range records {
		assert.NotEmpty(t, rec.OpenDate)
	}
}

func TestParseFileSortsChronologically(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)

	records, err := ParseFile(path)

	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cisd", records[0].EntryModel, "earlier trade first")
	assert.Equal(t, "breakers", records[1].EntryModel)
}

func TestParseFileSortedDisabled(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)

	records, err := ParseFileSorted(path, false)

	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "breakers", records[0].EntryModel, "export order preserved")
}

func TestParseFileMissingOpenDateColumn(t *testing.T) {
	path := writeTempCSV(t, "Date,Symbol\n2025-01-01,ES\n")

	_, err := ParseFile(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Open Date")
}

func TestParseUnknownColumnsIgnored(t *testing.T) {
	csvData := "Open Date,Symbol,Net P&L,Some Future Column\n2025-03-01,ES,10,whatever\n"

	records, err := Parse(strings.NewReader(csvData))

	assert.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10", records[0].NetPnL)
}

func TestValidateFormat(t *testing.T) {
	t.Run("Valid export", func(t *testing.T) {
		path := writeTempCSV(t, sampleCSV)
		valid, err := ValidateFormat(path)
		assert.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Missing required column", func(t *testing.T) {
		path := writeTempCSV(t, "Date,Symbol\n2025-01-01,ES\n")
		valid, err := ValidateFormat(path)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ValidateFormat(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestParseAndMapEndToEnd(t *testing.T) {
	csvData := `Open Date,Entry Model,Status,Net P&L
2025-01-15,breakers,Win,150
,,,
2025-01-10,cisd,Loss,-42.5
`
	path := writeTempCSV(t, csvData)

	records, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2, "the dateless row is excluded")

	rows := stbmapper.MapAll(records, stbmapper.DateStyleXlsx)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(models.ImportHeaders))
		assert.Equal(t, "USD", row[3])
	}
	assert.Equal(t, "2025-01-10", rows[0][0])
	assert.Equal(t, "2025-01-15", rows[1][0])
}

func TestSortKeepsUnparseableDatesInFront(t *testing.T) {
	csvData := `Open Date,Entry Model
garbage,first
2025-01-02,second
2025-01-01,third
`
	path := writeTempCSV(t, csvData)

	records, err := ParseFile(path)

	assert.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].EntryModel)
	assert.Equal(t, "third", records[1].EntryModel)
	assert.Equal(t, "second", records[2].EntryModel)
}
