// =============================================================================
// CSV to JSON Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to JSON Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   converter           - Convert examples/data.csv into examples/data.json
//   converter version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-JSON-conversion/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
