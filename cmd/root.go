// =============================================================================
// CSV to JSON Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command performs the conversion: it reads examples/data.csv and writes
// examples/data.json.
//
// COBRA CLI STRUCTURE:
//   rootCmd (converter)         - run the conversion
//   └── versionCmd (converter version)
//
// CONFIGURATION:
//   The command takes no flags and reads no environment variables. An
//   optional config.yaml in the working directory sets the log level and the
//   null tokens.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/converter"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/logger"
	"github.com/spf13/cobra"
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It runs the conversion.
var rootCmd = &cobra.Command{
	Use:   "converter",
	Short: "CSV to JSON Converter - Normalize a CSV export into a JSON document",
	Long: `CSV to JSON Converter reads ` + config.InputPath + ` and writes ` + config.OutputPath + `.

Each row becomes one JSON object:
  - Empty rows and columns without a name are dropped
  - Values are trimmed; empty values become null
  - Decimal-comma numbers ("3,14") become floats, whole numbers become integers
  - Everything else is kept as text`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

// runConvert loads the configuration, runs the converter and prints the
// confirmation to stdout.
func runConvert(stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(&logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		Output:     stderr,
		TimeFormat: "15:04:05",
	})

	result := converter.New(cfg, log).Run()
	if result.Error != nil {
		return result.Error
	}

	fmt.Fprintln(stdout, "✓ CSV converted to JSON")
	fmt.Fprintf(stdout, "  File:    %s\n", result.OutputFile)
	fmt.Fprintf(stdout, "  Records: %d\n", result.Stats.RecordsWritten)

	return nil
}
