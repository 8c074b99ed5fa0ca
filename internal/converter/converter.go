// =============================================================================
// CSV to JSON Converter - Converter Module
// =============================================================================
//
// This module contains the row filter, the dataset-level normalization and
// the conversion pipeline for the input file.
//
// CONVERSION PIPELINE:
//   1. Parse the input CSV file
//   2. Drop rows whose values are all empty, blank or absent
//   3. Normalize every remaining row into a Record
//   4. Generate the JSON document
//   5. Write the output file
//
// Steps 2 and 3 are pure: Normalize has no I/O and no shared state. Run is
// the thin boundary that supplies the fixed paths.
//
// =============================================================================

package converter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/jsonwriter"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/logger"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/types"
	"github.com/ginjaninja78/CSV-to-JSON-conversion/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// ROW FILTER AND NORMALIZATION
// =============================================================================

// IsEmptyRow reports whether every value in row is empty, whitespace-only or
// absent. Nameless extra values count too.
func IsEmptyRow(row types.RawRow) bool {
	for _, field := range row.Fields() {
		if field.Present && strings.TrimSpace(field.Value) != "" {
			return false
		}
	}
	for _, extra := range row.Extra {
		if strings.TrimSpace(extra) != "" {
			return false
		}
	}
	return true
}

// NormalizeRow converts one raw row into a Record. The boolean is false when
// the row must be discarded.
//
// Fields whose trimmed name is empty are skipped. When two names trim to the
// same key, the later value wins and the key keeps its first position.
func (t *Transformer) NormalizeRow(row types.RawRow) (types.Record, bool) {
	if IsEmptyRow(row) {
		return types.Record{}, false
	}

	record := types.NewRecord(row.Len())
	for _, field := range row.Fields() {
		key := strings.TrimSpace(field.Name)
		if key == "" {
			continue
		}
		record.Set(key, t.NormalizeValue(field.Value, field.Present))
	}

	return record, true
}

// Normalize converts raw rows into the output dataset, keeping row order.
func (t *Transformer) Normalize(rows []types.RawRow) types.Dataset {
	dataset := make(types.Dataset, 0, len(rows))
	for _, row := range rows {
		if record, ok := t.NormalizeRow(row); ok {
			dataset = append(dataset, record)
		}
	}
	return dataset
}

// Normalize converts raw rows with the default policy.
func Normalize(rows []types.RawRow) types.Dataset {
	return defaultTransformer.Normalize(rows)
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// InputFile is the path to the CSV file that was read.
	InputFile string

	// OutputFile is the path to the generated JSON file.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// RowsRead is the number of data rows in the input.
	RowsRead int

	// RowsDropped is the number of rows discarded as empty.
	RowsDropped int

	// RecordsWritten is the number of objects in the output document.
	RecordsWritten int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter runs the pipeline for the configured input and output paths.
type Converter struct {
	cfg         *config.Config
	transformer *Transformer
	logger      logger.Logger
}

// New creates a Converter. A nil log discards diagnostics.
func New(cfg *config.Config, log logger.Logger) *Converter {
	if log == nil {
		log = logger.NewNop()
	}
	return &Converter{
		cfg:         cfg,
		transformer: NewTransformer(Policy{NullTokens: cfg.NullTokens}),
		logger:      log.With("run_id", uuid.New().String()),
	}
}

// Run executes the conversion pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{InputFile: c.cfg.InputPath}

	c.logger.Debug("Reading input", "path", c.cfg.InputPath)

	csvData, err := csvparser.Parse(c.cfg.InputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse CSV: %w", err)
		return result
	}

	result.Stats.RowsRead = csvData.RowCount
	c.logger.Debug("Parsed input", "rows", csvData.RowCount, "columns", csvData.ColumnCount)

	dataset := c.transformer.Normalize(csvData.Rows)
	result.Stats.RecordsWritten = len(dataset)
	result.Stats.RowsDropped = csvData.RowCount - len(dataset)
	c.logger.Debug("Normalized rows", "records", len(dataset), "dropped", result.Stats.RowsDropped)

	doc, err := jsonwriter.Generate(dataset)
	if err != nil {
		result.Error = fmt.Errorf("failed to generate JSON: %w", err)
		return result
	}

	if err := utils.WriteOutputFile(c.cfg.OutputPath, doc); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = c.cfg.OutputPath
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	c.logger.Debug("Wrote output", "path", c.cfg.OutputPath, "bytes", len(doc), "elapsed", result.Stats.ProcessingTime)

	return result
}
