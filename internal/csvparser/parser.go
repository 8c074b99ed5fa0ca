// =============================================================================
// CSV to JSON Converter - CSV Parser Module
// =============================================================================
//
// This module reads the delimited input file into a header and a list of raw
// rows. It does no trimming or typing: that is the converter's job.
//
// FEATURES:
//   - UTF-8 decoding with BOM removal (invalid bytes become U+FFFD)
//   - Rows shorter than the header: missing trailing fields are marked absent
//   - Rows longer than the header: surplus values are kept as nameless extras
//   - Header names are kept exactly as written, including blank ones
//   - An empty file yields an empty result, not an error
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/types"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrOpenInput is returned when the input file cannot be opened.
var ErrOpenInput = errors.New("cannot open input file")

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Headers contains the column headers exactly as written in the file.
	Headers []string

	// Rows contains the data rows in file order.
	Rows []types.RawRow

	// SourceFile is the path (or label) of the source.
	SourceFile string

	// RowCount is the number of data rows (excluding the header).
	RowCount int

	// ColumnCount is the number of header columns.
	ColumnCount int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed data.
func Parse(filePath string) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenInput, filePath, err)
	}
	defer file.Close()

	return ParseReader(file, filePath)
}

// ParseReader reads CSV text from r. source labels the data in CSVData and
// in error messages.
//
// PARSING PROCESS:
//  1. Decode UTF-8 and drop a leading byte order mark
//  2. Read every record
//  3. Take the first record as the header
//  4. Map every later record onto the header
func ParseReader(r io.Reader, source string) (*CSVData, error) {
	decoded := transform.NewReader(bufio.NewReader(r), unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	csvReader := csv.NewReader(decoded)
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", source, err)
	}

	data := &CSVData{
		Headers:    []string{},
		Rows:       []types.RawRow{},
		SourceFile: source,
	}

	if len(allRows) == 0 {
		return data, nil
	}

	data.Headers = allRows[0]
	data.ColumnCount = len(data.Headers)

	for _, record := range allRows[1:] {
		data.Rows = append(data.Rows, buildRow(data.Headers, record))
	}
	data.RowCount = len(data.Rows)

	return data, nil
}

// configureReader configures the CSV reader.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Allow a variable number of fields per row. Short and long rows are
	// handled in buildRow.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true

	// Leading spaces are data: values are trimmed later, and trimming here
	// would change how a quoted field after a space is read.
	reader.TrimLeadingSpace = false
}

// buildRow maps one record onto the header.
func buildRow(headers, record []string) types.RawRow {
	row := types.NewRawRow(len(headers))

	for i, header := range headers {
		if i < len(record) {
			row.Set(header, record[i], true)
		} else {
			row.Set(header, "", false)
		}
	}

	if len(record) > len(headers) {
		row.Extra = append([]string(nil), record[len(headers):]...)
	}

	return row
}
