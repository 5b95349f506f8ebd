// Package sink defines the output destinations for mapped import rows and
// the policy that selects between them.
package sink

import "context"

// Placeholder is the spreadsheet ID shipped in the default configuration.
// A spreadsheet ID equal to it means Google Sheets was never configured.
const Placeholder = "YOUR_SPREADSHEET_ID_HERE"

// Choice identifies the selected output sink.
type Choice int

const (
	// Sheets appends rows to a Google Sheets tab.
	Sheets Choice = iota
	// Xlsx writes rows into a copy of the STB xlsx template.
	Xlsx
)

func (c Choice) String() string {
	switch c {
	case Sheets:
		return "sheets"
	case Xlsx:
		return "xlsx"
	}
	return "unknown"
}

// Writer persists a full set of mapped rows to one destination.
// Implementations do not retry and do not roll back rows already written.
type Writer interface {
	Write(ctx context.Context, rows [][]interface{}) error
}

// Choose resolves which sink a run uses. Explicit flags win, xlsx over
// sheets. Without flags the choice is automatic: Sheets when a real
// (non-placeholder) spreadsheet ID is configured and the credentials file
// exists, otherwise the xlsx fallback. The function is pure; the caller
// performs the actual filesystem probe for credentialsExist.
func Choose(spreadsheetID string, credentialsExist, forceSheets, forceXlsx bool) Choice {
	if forceXlsx {
		return Xlsx
	}
	if forceSheets {
		return Sheets
	}
	if spreadsheetID != "" && spreadsheetID != Placeholder && credentialsExist {
		return Sheets
	}
	return Xlsx
}
