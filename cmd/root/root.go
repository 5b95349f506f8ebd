// Package root contains the root command for the application
package root

import (
	"fjacquet/zella-stb/internal/config"
	"fjacquet/zella-stb/internal/fileutils"
	"fjacquet/zella-stb/internal/sheetsink"
	"fjacquet/zella-stb/internal/stbmapper"
	"fjacquet/zella-stb/internal/xlsxsink"
	"fjacquet/zella-stb/internal/zellaparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg = &config.Config{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "zella-stb",
		Short: "Convert TradeZella CSV exports to the SmartTraderAI bulk-import format.",
		Long: `zella-stb converts a TradeZella trade-journal CSV export into the
SmartTraderAI (STB) bulk-import schema. By default it appends directly to a
Google Sheet and falls back to an .xlsx file when no credentials are configured.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to zella-stb!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all worker packages
			zellaparser.SetLogger(Log)
			stbmapper.SetLogger(Log)
			sheetsink.SetLogger(Log)
			xlsxsink.SetLogger(Log)
			fileutils.SetLogger(Log)

			// Propagate the configured CSV delimiter
			zellaparser.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input TradeZella CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output .xlsx path (auto-named if omitted)")
}
