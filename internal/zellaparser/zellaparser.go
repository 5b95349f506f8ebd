// Package zellaparser provides functionality to parse TradeZella CSV
// exports into trade records ready for mapping.
// It handles the filtering of footer noise and chronological ordering.
package zellaparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"fjacquet/zella-stb/internal/converterror"
	"fjacquet/zella-stb/internal/dateutils"
	"fjacquet/zella-stb/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// delimiter is the CSV field separator; TradeZella exports use a comma
// but the config layer can override it.
var delimiter rune = ','

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter allows setting the field separator for CSV input
func SetDelimiter(d rune) {
	delimiter = d
}

// ParseFile parses a TradeZella CSV export, sorted chronologically by
// trade open date. This is the main entry point for parsing.
func ParseFile(filePath string) ([]models.TradeRecord, error) {
	return ParseFileSorted(filePath, true)
}

// ParseFileSorted parses a TradeZella CSV export and optionally sorts the
// records by open date. The file format is validated first.
func ParseFileSorted(filePath string, sorted bool) ([]models.TradeRecord, error) {
	log.WithField("file", filePath).Info("Parsing TradeZella CSV file")

	valid, err := ValidateFormat(filePath)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !valid {
		return nil, &converterror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "TradeZella CSV export",
			Msg:            "missing 'Open Date' column",
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := Parse(file)
	if err != nil {
		return nil, err
	}

	if sorted {
		sortByOpenDate(records)
	}

	log.WithField("count", len(records)).Info("Successfully parsed TradeZella CSV file")
	return records, nil
}

// Parse reads TradeZella CSV data and returns the valid trade records.
// Rows without an Open Date are export footer/metadata noise and are
// dropped silently.
func Parse(r io.Reader) ([]models.TradeRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	// Export footers often carry fewer fields than the header
	reader.FieldsPerRecord = -1

	var rows []models.TradeRecord
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV data")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	records := make([]models.TradeRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if strings.TrimSpace(row.OpenDate) == "" {
			dropped++
			continue
		}
		records = append(records, row)
	}

	if dropped > 0 {
		log.WithField("count", dropped).Debug("Dropped rows without an open date")
	}
	return records, nil
}

// sortByOpenDate orders records chronologically by their parsed open
// date. The sort is stable; records with unparseable dates keep their
// relative order at the front.
func sortByOpenDate(records []models.TradeRecord) {
	type keyed struct {
		date time.Time
		rec  models.TradeRecord
	}
	items := make([]keyed, len(records))
	for i, rec := range records {
		items[i].rec = rec
		if t, _, err := dateutils.ParseDate(rec.OpenDate); err == nil {
			items[i].date = t
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date.Before(items[j].date)
	})
	for i := range items {
		records[i] = items[i].rec
	}
}

// ValidateFormat checks if the file is a valid TradeZella CSV export.
// The only hard requirement is the Open Date column; every other column
// degrades to a documented blank during mapping.
func ValidateFormat(filePath string) (bool, error) {
	log.WithField("file", filePath).Info("Validating TradeZella CSV format")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open file for validation")
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter

	header, err := reader.Read()
	if err != nil {
		log.WithError(err).Error("Failed to read CSV header")
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}

	for _, col := range header {
		if col == "Open Date" {
			log.Info("File is a valid TradeZella CSV")
			return true, nil
		}
	}

	log.WithField("column", "Open Date").Info("Required column missing from TradeZella CSV")
	return false, nil
}
