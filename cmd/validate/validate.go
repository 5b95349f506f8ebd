// Package validate implements the format-check command.
package validate

import (
	"fjacquet/zella-stb/cmd/root"
	"fjacquet/zella-stb/internal/converterror"
	"fjacquet/zella-stb/internal/fileutils"
	"fjacquet/zella-stb/internal/zellaparser"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a file is a valid TradeZella CSV export",
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("%v", &converterror.MissingFileError{Kind: "input CSV", Path: input})
	}

	valid, err := zellaparser.ValidateFormat(input)
	if err != nil {
		root.Log.Fatalf("Error validating file: %v", err)
	}
	if !valid {
		root.Log.Fatal("The file is not a valid TradeZella CSV export")
	}
	root.Log.Info("Validation successful.")
}
