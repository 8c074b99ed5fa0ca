// =============================================================================
// CSV to JSON Converter - Field Normalizer
// =============================================================================
//
// This module turns one raw cell into a typed scalar. Each cell is trimmed
// and then classified by the first rule that matches:
//
//   1. ""                          -> null
//   2. configured null token       -> null   (off by default)
//   3. contains ','                -> float with ',' read as '.', else string
//   4. base-10 integer             -> integer
//   5. anything else               -> string (trimmed text)
//
// A value with a comma never reaches the integer rule, and a value with only
// a period ("3.14") is a string: the decimal-comma path is the only route to
// a float.
//
// =============================================================================

package converter

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/CSV-to-JSON-conversion/internal/types"
)

// =============================================================================
// POLICY
// =============================================================================

// Policy holds the tunable parts of field normalization.
type Policy struct {
	// NullTokens are literal values that normalize to null, compared
	// case-insensitively after trimming. Empty by default.
	NullTokens []string
}

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer applies a Policy to cells, rows and datasets.
type Transformer struct {
	nullTokens map[string]struct{}
}

// NewTransformer creates a Transformer for the given policy.
func NewTransformer(policy Policy) *Transformer {
	t := &Transformer{nullTokens: make(map[string]struct{}, len(policy.NullTokens))}
	for _, token := range policy.NullTokens {
		t.nullTokens[strings.ToLower(strings.TrimSpace(token))] = struct{}{}
	}
	return t
}

var defaultTransformer = NewTransformer(Policy{})

// NormalizeValue types a raw cell with the default policy.
func NormalizeValue(raw string, present bool) types.Value {
	return defaultTransformer.NormalizeValue(raw, present)
}

// NormalizeValue types a raw cell. An absent cell is treated as "".
func (t *Transformer) NormalizeValue(raw string, present bool) types.Value {
	if !present {
		raw = ""
	}
	clean := strings.TrimSpace(raw)

	switch {
	case clean == "":
		return types.Null()
	case t.isNullToken(clean):
		return types.Null()
	case strings.Contains(clean, ","):
		if f, ok := parseDecimalComma(clean); ok {
			return types.Float(f)
		}
		return types.String(clean)
	}

	if digits, ok := parseInteger(clean); ok {
		return types.Integer(digits)
	}
	return types.String(clean)
}

func (t *Transformer) isNullToken(clean string) bool {
	if len(t.nullTokens) == 0 {
		return false
	}
	_, ok := t.nullTokens[strings.ToLower(clean)]
	return ok
}

// =============================================================================
// PARSERS
// =============================================================================

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// parseInteger accepts an optional sign followed by ASCII digits and returns
// the canonical digits ("007" -> "7", "+5" -> "5", "-0" -> "0").
func parseInteger(s string) (string, bool) {
	if !integerPattern.MatchString(s) {
		return "", false
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", false
	}
	return n.String(), true
}

// parseDecimalComma replaces every ',' with '.' and parses the result as a
// finite decimal number.
func parseDecimalComma(s string) (float64, bool) {
	dotted := strings.ReplaceAll(s, ",", ".")
	if !decimalPattern.MatchString(dotted) {
		return 0, false
	}
	f, err := strconv.ParseFloat(dotted, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
