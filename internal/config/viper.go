// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/zella-stb/internal/sink"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LogConfig holds the logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig holds the input CSV settings
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// SheetsConfig holds the Google Sheets sink settings
type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id" yaml:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
	TabName         string `mapstructure:"tab_name" yaml:"tab_name"`
}

// XlsxConfig holds the xlsx file sink settings
type XlsxConfig struct {
	TemplatePath string `mapstructure:"template_path" yaml:"template_path"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Sheets SheetsConfig `mapstructure:"sheets" yaml:"sheets"`
	Xlsx   XlsxConfig   `mapstructure:"xlsx" yaml:"xlsx"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.zella-stb")
	v.AddConfigPath(".zella-stb")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("ZELLA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Well-known unprefixed variables keep working: the original tool's
	// two knobs plus the plain logging variables.
	unprefixed := map[string]string{
		"sheets.spreadsheet_id":   "SPREADSHEET_ID",
		"sheets.credentials_file": "SERVICE_ACCOUNT_FILE",
		"log.level":               "LOG_LEVEL",
		"log.format":              "LOG_FORMAT",
	}
	for key, env := range unprefixed {
		if err := v.BindEnv(key, env); err != nil {
			fmt.Printf("Warning: failed to bind %s environment variable: %v\n", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Sheets defaults
	v.SetDefault("sheets.spreadsheet_id", sink.Placeholder)
	v.SetDefault("sheets.credentials_file", "service_account.json")
	v.SetDefault("sheets.tab_name", "Sheet1")

	// Xlsx defaults
	v.SetDefault("xlsx.template_path", "STB_Import_Template.xlsx")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate sheet tab name
	if config.Sheets.TabName == "" {
		return fmt.Errorf("sheets.tab_name must not be empty")
	}

	return nil
}
