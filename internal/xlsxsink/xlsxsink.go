// Package xlsxsink writes mapped import rows into a copy of the STB xlsx
// template. Stale data rows below the header are purged before writing.
package xlsxsink

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/zella-stb/internal/fileutils"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Writer fills the STB template with mapped rows and saves it.
type Writer struct {
	TemplatePath string
	OutputPath   string
}

// DefaultOutputPath returns the auto-generated output file name,
// datestamped with the given time.
func DefaultOutputPath(now time.Time) string {
	return fmt.Sprintf("STB_Import_Merged_%s.xlsx", now.Format("20060102"))
}

// Write loads the template, removes every pre-existing data row below the
// header, writes the mapped rows starting at row 2 and saves the result.
func (w *Writer) Write(ctx context.Context, rows [][]interface{}) error {
	log.WithField("template", filepath.Base(w.TemplatePath)).Info("Loading STB template")

	f, err := excelize.OpenFile(w.TemplatePath)
	if err != nil {
		return fmt.Errorf("error opening template: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheetName := f.GetSheetName(0)

	// Purge example/old data rows, preserve header row 1. Bottom-up so
	// row indices stay valid while removing.
	existing, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("error reading template rows: %w", err)
	}
	for i := len(existing); i >= 2; i-- {
		if err := f.RemoveRow(sheetName, i); err != nil {
			return fmt.Errorf("error removing stale row %d: %w", i, err)
		}
	}

	log.WithField("count", len(rows)).Info("Writing rows")
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("error building cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("error writing cell %s: %w", cell, err)
			}
		}
	}

	if dir := filepath.Dir(w.OutputPath); dir != "." {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return err
		}
	}
	if err := f.SaveAs(w.OutputPath); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}

	log.WithFields(logrus.Fields{
		"count": len(rows),
		"file":  w.OutputPath,
	}).Info("Trades written to xlsx file")
	return nil
}
