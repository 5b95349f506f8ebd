package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"ISO format", "2025-01-15", true, 2025, time.January, 15, LayoutISO},
		{"ISO datetime", "2025-01-15 09:30:00", true, 2025, time.January, 15, LayoutISODateTime},
		{"ISO datetime no seconds", "2025-01-15 09:30", true, 2025, time.January, 15, "2006-01-02 15:04"},
		{"US format", "01/15/2025", true, 2025, time.January, 15, LayoutUS},
		{"US datetime", "01/15/2025 09:30", true, 2025, time.January, 15, LayoutUSDateTime},
		{"With month name", "Jan 15, 2025", true, 2025, time.January, 15, LayoutWithMonth},
		{"Extra whitespace", "  2025-01-15  ", true, 2025, time.January, 15, LayoutISO},
		{"Empty string", "", false, 0, 0, 0, ""},
		{"Invalid format", "not a date", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, tc.expectedFmt, format)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2025-01-15", CleanDateString("  2025-01-15  "))
	assert.Equal(t, "Jan 15, 2025", CleanDateString("Jan   15,  2025"))
	assert.Equal(t, "", CleanDateString("   "))
}

func TestToISODate(t *testing.T) {
	d := time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-15", ToISODate(d))
}

func TestToSheetsDate(t *testing.T) {
	d := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1/5/2025", ToSheetsDate(d))
}
