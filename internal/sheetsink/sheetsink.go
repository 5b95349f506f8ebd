// Package sheetsink appends mapped import rows to a Google Sheets tab.
// It authenticates with a service-account credentials file and submits
// values with USER_ENTERED semantics, so the destination applies its own
// type inference to the literal strings.
package sheetsink

import (
	"context"
	"fmt"

	"fjacquet/zella-stb/internal/config"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Writer appends rows to one spreadsheet tab.
type Writer struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// New builds a Writer authenticated with the configured service account.
func New(ctx context.Context, cfg config.SheetsConfig) (*Writer, error) {
	log.WithField("credentials", cfg.CredentialsFile).Info("Authenticating with Google")

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		tab:           cfg.TabName,
	}, nil
}

// Write appends the mapped rows after the existing content of the tab.
// There is no retry and no rollback; rows already transmitted stay.
func (w *Writer) Write(ctx context.Context, rows [][]interface{}) error {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.tab).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("error reading existing sheet values: %w", err)
	}

	used := len(resp.Values)
	log.WithFields(logrus.Fields{
		"existing": dataRows(used),
		"from_row": nextRow(used),
	}).Info("Appending after existing sheet content")

	if len(rows) == 0 {
		log.Warn("No rows to write")
		return nil
	}

	vr := &sheets.ValueRange{Values: rows}
	_, err = w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, startCell(w.tab, used), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("error writing to sheet: %w", err)
	}

	log.WithFields(logrus.Fields{
		"count": len(rows),
		"tab":   w.tab,
	}).Info("Trades appended to Google Sheet")
	return nil
}

// nextRow is the 1-based row the append starts at, given how many rows
// the tab already holds.
func nextRow(used int) int {
	return used + 1
}

// dataRows is the number of existing data rows, excluding the header.
func dataRows(used int) int {
	if used <= 1 {
		return 0
	}
	return used - 1
}

// startCell builds the A1-notation anchor for the append range.
func startCell(tab string, used int) string {
	return fmt.Sprintf("%s!A%d", tab, nextRow(used))
}
