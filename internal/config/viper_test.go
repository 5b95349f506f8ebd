package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/zella-stb/internal/sink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chtemp moves the test into an empty directory so no ambient config.yaml
// or .zella-stb directory leaks into the run.
func chtemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	t.Setenv("HOME", dir)
}

func TestInitializeConfigDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, sink.Placeholder, cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "service_account.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, "Sheet1", cfg.Sheets.TabName)
	assert.Equal(t, "STB_Import_Template.xlsx", cfg.Xlsx.TemplatePath)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	chtemp(t)
	t.Setenv("ZELLA_LOG_LEVEL", "debug")
	t.Setenv("ZELLA_SHEETS_TAB_NAME", "Trades")

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Trades", cfg.Sheets.TabName)
}

func TestInitializeConfigLegacyEnvNames(t *testing.T) {
	chtemp(t)
	t.Setenv("SPREADSHEET_ID", "1aBcD3fGhIjKlMnOpQrStUvWxYz")
	t.Setenv("SERVICE_ACCOUNT_FILE", "/etc/zella/creds.json")

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "1aBcD3fGhIjKlMnOpQrStUvWxYz", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/etc/zella/creds.json", cfg.Sheets.CredentialsFile)
}

func TestInitializeConfigFromFile(t *testing.T) {
	chtemp(t)

	yaml := `log:
  level: warn
sheets:
  tab_name: Imported
xlsx:
  template_path: templates/stb.xlsx
`
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Imported", cfg.Sheets.TabName)
	assert.Equal(t, "templates/stb.xlsx", cfg.Xlsx.TemplatePath)
	// Untouched values keep defaults
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Bad log level", "ZELLA_LOG_LEVEL", "noisy"},
		{"Bad log format", "ZELLA_LOG_FORMAT", "xml"},
		{"Multi-char delimiter", "ZELLA_CSV_DELIMITER", ";;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chtemp(t)
			t.Setenv(tc.key, tc.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}
