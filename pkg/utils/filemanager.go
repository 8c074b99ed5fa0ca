// =============================================================================
// CSV to JSON Converter - File Manager Utilities
// =============================================================================
//
// This module provides the file operations used by the converter:
//   - Checking whether a path exists
//   - Writing the output document in one open/write/close operation
//
// The output file is only created once the whole document is ready, and it is
// closed on every path.
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// ErrWriteOutput is returned when the output file cannot be written.
var ErrWriteOutput = errors.New("cannot write output file")

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteOutputFile creates (or truncates) filePath and writes data to it.
//
// The file is closed on every path. A failed close is reported when no
// earlier error occurred, since it can mean buffered data never reached disk.
func WriteOutputFile(filePath string, data []byte) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w %s: close: %w", ErrWriteOutput, filePath, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, filePath, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("%w %s: flush: %w", ErrWriteOutput, filePath, err)
	}

	return nil
}

// =============================================================================
// FILE UTILITIES
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
