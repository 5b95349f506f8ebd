package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoose(t *testing.T) {
	const realID = "1aBcD3fGhIjKlMnOpQrStUvWxYz"

	tests := []struct {
		name             string
		spreadsheetID    string
		credentialsExist bool
		forceSheets      bool
		forceXlsx        bool
		expected         Choice
	}{
		{"Explicit xlsx wins", realID, true, false, true, Xlsx},
		{"Explicit xlsx beats explicit sheets", realID, true, true, true, Xlsx},
		{"Explicit sheets", "", false, true, false, Sheets},
		{"Auto fully configured", realID, true, false, false, Sheets},
		{"Auto placeholder ID", Placeholder, true, false, false, Xlsx},
		{"Auto empty ID", "", true, false, false, Xlsx},
		{"Auto missing credentials", realID, false, false, false, Xlsx},
		{"Auto nothing configured", Placeholder, false, false, false, Xlsx},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			choice := Choose(tc.spreadsheetID, tc.credentialsExist, tc.forceSheets, tc.forceXlsx)
			assert.Equal(t, tc.expected, choice)
		})
	}
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "sheets", Sheets.String())
	assert.Equal(t, "xlsx", Xlsx.String())
	assert.Equal(t, "unknown", Choice(42).String())
}
