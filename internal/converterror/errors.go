package converterror

import "fmt"

// MissingFileError represents a required file that does not exist.
// Kind names the role of the file (input CSV, credentials, template).
type MissingFileError struct {
	Kind string
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// ConfigError represents a configuration value that blocks the run,
// such as a spreadsheet ID still set to its placeholder.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// WriteError represents a sink failure after mapping succeeded. Rows already
// transmitted to the destination are not rolled back.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s write failed: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
