// Package convert implements the conversion pipeline command: parse the
// TradeZella export, map every trade and hand the rows to one sink.
package convert

import (
	"context"
	"time"

	"fjacquet/zella-stb/cmd/root"
	"fjacquet/zella-stb/internal/config"
	"fjacquet/zella-stb/internal/converterror"
	"fjacquet/zella-stb/internal/fileutils"
	"fjacquet/zella-stb/internal/models"
	"fjacquet/zella-stb/internal/sheetsink"
	"fjacquet/zella-stb/internal/sink"
	"fjacquet/zella-stb/internal/stbmapper"
	"fjacquet/zella-stb/internal/xlsxsink"
	"fjacquet/zella-stb/internal/zellaparser"

	"github.com/spf13/cobra"
)

var (
	forceSheets bool
	forceXlsx   bool
	sheetID     string
	credsFile   string
	tabName     string
	template    string
	noSort      bool
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a TradeZella CSV export and write it to the selected sink",
	Long: `Convert a TradeZella CSV export into STB bulk-import rows and write them
to Google Sheets or to a copy of the STB .xlsx template. Without --sheets or
--xlsx the sink is auto-detected from the configured spreadsheet ID and
credentials file.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().BoolVar(&forceSheets, "sheets", false, "Force Google Sheets output")
	Cmd.Flags().BoolVar(&forceXlsx, "xlsx", false, "Force .xlsx file output")
	Cmd.Flags().StringVar(&sheetID, "sheet-id", "", "Google Spreadsheet ID (overrides config)")
	Cmd.Flags().StringVar(&credsFile, "creds", "", "Path to service account JSON (overrides config)")
	Cmd.Flags().StringVar(&tabName, "tab", "", "Sheet tab name (overrides config)")
	Cmd.Flags().StringVar(&template, "template", "", "Path to STB .xlsx template (overrides config)")
	Cmd.Flags().BoolVar(&noSort, "no-sort", false, "Keep the export order instead of sorting by open date")
}

func convertFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("%v", &converterror.MissingFileError{Kind: "input CSV", Path: input})
	}

	records, err := zellaparser.ParseFileSorted(input, !noSort)
	if err != nil {
		root.Log.Fatalf("Error parsing TradeZella CSV: %v", err)
	}
	root.Log.Infof("%d valid trade rows found", len(records))

	cfg := resolveSheetsConfig(root.Cfg.Sheets)
	templatePath := firstNonEmpty(template, root.Cfg.Xlsx.TemplatePath)

	choice := sink.Choose(cfg.SpreadsheetID, fileutils.FileExists(cfg.CredentialsFile), forceSheets, forceXlsx)
	if choice == sink.Xlsx && !forceXlsx && !forceSheets {
		root.Log.Info("Google Sheets not configured - using .xlsx fallback")
	}

	ctx := context.Background()

	switch choice {
	case sink.Sheets:
		if cfg.SpreadsheetID == "" || cfg.SpreadsheetID == sink.Placeholder {
			root.Log.Fatalf("%v", &converterror.ConfigError{
				Field:  "sheets.spreadsheet_id",
				Reason: "is not set, configure it or use --sheet-id",
			})
		}
		if !fileutils.FileExists(cfg.CredentialsFile) {
			root.Log.Fatalf("%v", &converterror.MissingFileError{Kind: "service account file", Path: cfg.CredentialsFile})
		}

		w, err := sheetsink.New(ctx, cfg)
		if err != nil {
			root.Log.Fatalf("Error connecting to Google Sheets: %v", err)
		}
		writeRows(ctx, w, choice.String(), records, stbmapper.DateStyleSheets)

	case sink.Xlsx:
		if !fileutils.FileExists(templatePath) {
			root.Log.Fatalf("%v", &converterror.MissingFileError{Kind: "template", Path: templatePath})
		}

		output := root.SharedFlags.Output
		if output == "" {
			output = xlsxsink.DefaultOutputPath(time.Now())
		}
		w := &xlsxsink.Writer{TemplatePath: templatePath, OutputPath: output}
		writeRows(ctx, w, choice.String(), records, stbmapper.DateStyleXlsx)
	}
}

// writeRows maps the records with the sink's date style and hands them to
// the writer. Sink failures are fatal; rows already transmitted stay.
func writeRows(ctx context.Context, w sink.Writer, name string, records []models.TradeRecord, style stbmapper.DateStyle) {
	rows := stbmapper.MapAll(records, style)
	if err := w.Write(ctx, rows); err != nil {
		root.Log.Fatalf("%v", &converterror.WriteError{Sink: name, Err: err})
	}
	root.Log.Infof("Conversion completed successfully, %d trades written", len(rows))
}

// resolveSheetsConfig overlays the command-line flags on the loaded
// configuration.
func resolveSheetsConfig(cfg config.SheetsConfig) config.SheetsConfig {
	cfg.SpreadsheetID = firstNonEmpty(sheetID, cfg.SpreadsheetID)
	cfg.CredentialsFile = firstNonEmpty(credsFile, cfg.CredentialsFile)
	cfg.TabName = firstNonEmpty(tabName, cfg.TabName)
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
