// Package dateutils provides permissive date parsing for the heterogeneous
// date cells found in trade-journal exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants used throughout the application
const (
	LayoutISO         = "2006-01-02"
	LayoutISODateTime = "2006-01-02 15:04:05"
	LayoutUS          = "01/02/2006"
	LayoutUSDateTime  = "01/02/2006 15:04"
	// LayoutSheets is the month/day/year text form Google Sheets
	// re-interprets under USER_ENTERED semantics.
	LayoutSheets    = "1/2/2006"
	LayoutWithMonth = "Jan 2, 2006"
)

// CommonFormats is the list of layouts tried in order when parsing a raw
// date cell. TradeZella exports ISO datetimes; older exports and manual
// edits show US and textual forms.
var CommonFormats = []string{
	LayoutISO,
	LayoutISODateTime,
	"2006-01-02 15:04",
	LayoutUS,
	LayoutUSDateTime,
	"01/02/2006 15:04:05",
	"01/02/2006 03:04 PM",
	"1/2/2006",
	"1/2/2006 15:04",
	time.RFC3339,
	LayoutWithMonth,
	"January 2, 2006",
	"2-Jan-2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims a raw date cell and collapses repeated whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using the common formats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD),
// dropping any time component.
func ToISODate(date time.Time) string {
	return date.Format(LayoutISO)
}

// ToSheetsDate formats a time.Time value as month/day/year text.
func ToSheetsDate(date time.Time) string {
	return date.Format(LayoutSheets)
}
