// =============================================================================
// CSV to JSON Converter - JSON Writer Module
// =============================================================================
//
// This module generates the output JSON document from a normalized dataset.
//
// JSON STRUCTURE:
//   [
//     {
//       "id": 1,
//       "price": 3.14,
//       "city": "café",
//       "note": null
//     }
//   ]
//
// ENCODING RULES:
//   - Objects keep the key order of their Record
//   - Integers are bare digits, floats always carry '.' or an exponent
//   - Strings escape only '"', '\' and control characters; non-ASCII text
//     is written as-is
//
// The document is first encoded compactly, then indented with tidwall/pretty.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/types"
	"github.com/tidwall/pretty"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for JSON generation.
type GenerateOptions struct {
	// Indent is the string used for each nesting level.
	// Default: two spaces
	Indent string
}

// DefaultGenerateOptions returns the default options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Indent: "  "}
}

// =============================================================================
// MAIN GENERATION FUNCTIONS
// =============================================================================

// Generate renders the dataset as an indented JSON document.
func Generate(dataset types.Dataset) ([]byte, error) {
	return GenerateWithOptions(dataset, DefaultGenerateOptions())
}

// GenerateWithOptions renders the dataset with custom options.
func GenerateWithOptions(dataset types.Dataset, options GenerateOptions) ([]byte, error) {
	compact, err := Compact(dataset)
	if err != nil {
		return nil, err
	}

	return pretty.PrettyOptions(compact, &pretty.Options{
		// Width 0 keeps every array element on its own line.
		Width:    0,
		Indent:   options.Indent,
		SortKeys: false,
	}), nil
}

// Compact renders the dataset as JSON without insignificant whitespace.
func Compact(dataset types.Dataset) ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteByte('[')
	for i, record := range dataset {
		if i > 0 {
			buffer.WriteByte(',')
		}
		if err := writeRecord(&buffer, record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	buffer.WriteByte(']')

	return buffer.Bytes(), nil
}

// writeRecord writes one record as an object.
func writeRecord(buffer *bytes.Buffer, record types.Record) error {
	buffer.WriteByte('{')
	for i, key := range record.Keys() {
		if i > 0 {
			buffer.WriteByte(',')
		}
		value, _ := record.Get(key)

		writeString(buffer, key)
		buffer.WriteByte(':')
		if err := writeValue(buffer, value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	buffer.WriteByte('}')
	return nil
}

// writeValue writes a scalar.
func writeValue(buffer *bytes.Buffer, value types.Value) error {
	switch value.Kind() {
	case types.KindNull:
		buffer.WriteString("null")
	case types.KindInteger:
		buffer.WriteString(value.IntegerText())
	case types.KindFloat:
		text, err := FormatFloat(value.Float64())
		if err != nil {
			return err
		}
		buffer.WriteString(text)
	case types.KindString:
		writeString(buffer, value.Text())
	default:
		return fmt.Errorf("unsupported value kind %s", value.Kind())
	}
	return nil
}

// =============================================================================
// SCALAR FORMATTING
// =============================================================================

// FormatFloat renders f as the shortest text that reads back as f. Numbers
// with a decimal exponent in [-4, 16) use positional notation and always keep
// a fractional part ("5.0"); others use exponent notation ("1e+16").
func FormatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("cannot encode %v as JSON", f)
	}

	exponent := 0
	if f != 0 {
		scientific := strconv.FormatFloat(f, 'e', -1, 64)
		e, err := strconv.Atoi(scientific[strings.IndexByte(scientific, 'e')+1:])
		if err != nil {
			return "", fmt.Errorf("format %v: %w", f, err)
		}
		exponent = e
	}

	if exponent < -4 || exponent >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64), nil
	}

	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	return text, nil
}

// writeString writes s as a JSON string literal. Only the characters JSON
// requires are escaped.
func writeString(buffer *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"

	buffer.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buffer.WriteString("\ufffd")
			} else {
				buffer.WriteString(s[i : i+size])
			}
			i += size
			continue
		}

		switch c {
		case '"':
			buffer.WriteString(`\"`)
		case '\\':
			buffer.WriteString(`\\`)
		case '\n':
			buffer.WriteString(`\n`)
		case '\r':
			buffer.WriteString(`\r`)
		case '\t':
			buffer.WriteString(`\t`)
		case '\b':
			buffer.WriteString(`\b`)
		case '\f':
			buffer.WriteString(`\f`)
		default:
			if c < 0x20 {
				buffer.WriteString(`\u00`)
				buffer.WriteByte(hex[c>>4])
				buffer.WriteByte(hex[c&0xf])
			} else {
				buffer.WriteByte(c)
			}
		}
		i++
	}
	buffer.WriteByte('"')
}
