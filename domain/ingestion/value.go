package ingestion

import (
	"strconv"
	"strings"
	"time"
)

// Value represents a typed cell with deterministic coercion
type Value struct {
	Type       ValueType  `json:"type"`
	StringVal  *string    `json:"string_val,omitempty"`
	NumericVal *float64   `json:"numeric_val,omitempty"`
	DateVal    *time.Time `json:"date_val,omitempty"`
	IsMissing  bool       `json:"is_missing"`
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumeric ValueType = "numeric"
	ValueTypeDate    ValueType = "date"
	ValueTypeMissing ValueType = "missing"
)

// NewStringValue creates a string value; empty strings are treated as missing
func NewStringValue(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Value{Type: ValueTypeMissing, IsMissing: true}
	}
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewDateValue creates a date value
func NewDateValue(t time.Time) Value {
	return Value{Type: ValueTypeDate, DateVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing, IsMissing: true}
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return strconv.FormatFloat(*v.NumericVal, 'f', -1, 64)
		}
	case ValueTypeDate:
		if v.DateVal != nil {
			return v.DateVal.Format("2006-01-02")
		}
	case ValueTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// IsNumeric returns true if the value holds a valid number
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeNumeric && v.NumericVal != nil
}

// IsDate returns true if the value holds a valid date
func (v Value) IsDate() bool {
	return v.Type == ValueTypeDate && v.DateVal != nil
}

// AsString returns the underlying string, or empty if not a string
func (v Value) AsString() string {
	if v.StringVal != nil {
		return *v.StringVal
	}
	return ""
}

// AsFloat64 returns the numeric value, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumericVal != nil {
		return *v.NumericVal
	}
	return 0.0
}

// AsInt returns the numeric value truncated to int
func (v Value) AsInt() int {
	return int(v.AsFloat64())
}

// AsTime returns the date value, or the zero time if not a date
func (v Value) AsTime() time.Time {
	if v.DateVal != nil {
		return *v.DateVal
	}
	return time.Time{}
}

// dateLayouts are tried in order during date coercion
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
}

// CoerceNumeric reinterprets a value as a number. Values that fail to parse
// become missing; never returns an error.
func CoerceNumeric(v Value) Value {
	switch v.Type {
	case ValueTypeNumeric:
		return v
	case ValueTypeMissing, ValueTypeDate:
		return NewMissingValue()
	}

	s := strings.TrimSpace(v.AsString())
	// Strip formatting commonly found in spreadsheet exports
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return NewMissingValue()
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NewMissingValue()
	}
	return NewNumericValue(n)
}

// CoerceDate reinterprets a value as a date. Values that fail to parse
// become missing; never returns an error.
func CoerceDate(v Value) Value {
	switch v.Type {
	case ValueTypeDate:
		return v
	case ValueTypeMissing, ValueTypeNumeric:
		return NewMissingValue()
	}

	s := strings.TrimSpace(v.AsString())
	if s == "" {
		return NewMissingValue()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDateValue(t)
		}
	}
	return NewMissingValue()
}

// Equal compares two values by type and content, used by idempotency checks
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case ValueTypeMissing:
		return true
	case ValueTypeString:
		return v.AsString() == other.AsString()
	case ValueTypeNumeric:
		return v.AsFloat64() == other.AsFloat64()
	case ValueTypeDate:
		return v.AsTime().Equal(other.AsTime())
	}
	return false
}
