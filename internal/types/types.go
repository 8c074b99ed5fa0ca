// =============================================================================
// CSV to JSON Converter - Shared Types
// =============================================================================
//
// This package contains the data model shared by the parser, the converter
// and the JSON writer. Keeping it here avoids import cycles:
//   - csvparser produces RawRow values
//   - converter turns RawRow values into Records
//   - jsonwriter serializes a Dataset
//
// =============================================================================

package types

import (
	"fmt"
	"strconv"
)

// =============================================================================
// RAW ROW
// =============================================================================

// RawField is one column of a RawRow.
type RawField struct {
	// Name is the column name exactly as it appeared in the header.
	Name string

	// Value is the raw cell text. It is meaningless when Present is false.
	Value string

	// Present is false when the row was shorter than the header.
	Present bool
}

// RawRow is an ordered mapping from raw column name to raw value.
//
// A column name that repeats in the header keeps the position of its first
// appearance and the value of its last one.
type RawRow struct {
	fields []RawField
	index  map[string]int

	// Extra holds values found past the end of the header. They have no
	// column name.
	Extra []string
}

// NewRawRow creates an empty RawRow with room for n columns.
func NewRawRow(n int) RawRow {
	return RawRow{
		fields: make([]RawField, 0, n),
		index:  make(map[string]int, n),
	}
}

// Set stores a value under name.
func (r *RawRow) Set(name, value string, present bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		r.fields[i].Present = present
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, RawField{Name: name, Value: value, Present: present})
}

// Fields returns the columns in header order.
func (r RawRow) Fields() []RawField {
	return r.fields
}

// Len returns the number of distinct column names.
func (r RawRow) Len() int {
	return len(r.fields)
}

// =============================================================================
// VALUE
// =============================================================================

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a normalized scalar: Null, Integer, Float or String.
//
// Integers are stored in canonical base-10 form so that values of any size
// survive unchanged. Value is comparable with ==.
type Value struct {
	kind    Kind
	integer string
	float   float64
	text    string
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Integer returns an Integer Value from canonical decimal digits
// (optional leading '-', no leading zeros).
func Integer(digits string) Value {
	return Value{kind: KindInteger, integer: digits}
}

// IntegerFrom returns an Integer Value from an int64.
func IntegerFrom(n int64) Value {
	return Value{kind: KindInteger, integer: strconv.FormatInt(n, 10)}
}

// Float returns a Float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// String returns a String Value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IntegerText returns the canonical digits of an Integer.
func (v Value) IntegerText() string {
	return v.integer
}

// Int64 returns the Integer as an int64. ok is false for other kinds or
// when the value does not fit.
func (v Value) Int64() (n int64, ok bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	n, err := strconv.ParseInt(v.integer, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 returns the Float payload.
func (v Value) Float64() float64 {
	return v.float
}

// Text returns the String payload.
func (v Value) Text() string {
	return v.text
}

// GoString renders v for debugging and test failure messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindInteger:
		return "Integer(" + v.integer + ")"
	case KindFloat:
		return "Float(" + strconv.FormatFloat(v.float, 'g', -1, 64) + ")"
	case KindString:
		return "String(" + strconv.Quote(v.text) + ")"
	default:
		return "Null"
	}
}

// =============================================================================
// RECORD AND DATASET
// =============================================================================

// Record is a normalized row: an ordered mapping from trimmed column name to
// Value. Keys keep the order in which they were first set.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord creates an empty Record with room for n keys.
func NewRecord(n int) Record {
	return Record{
		keys:   make([]string, 0, n),
		values: make(map[string]Value, n),
	}
}

// Set stores v under key. Setting an existing key replaces its value and
// leaves its position unchanged.
func (r *Record) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.keys)
}

// Dataset is the ordered sequence of surviving records.
type Dataset []Record
