// Package models defines data structures for workbook comparison.
package models

import (
	"strconv"
	"time"
)

// Kind discriminates the scalar cell value types.
type Kind uint8

const (
	// KindAbsent marks an empty cell. It is the canonical representation of
	// every missing value, including cells beyond a short row's width.
	KindAbsent Kind = iota
	// KindText marks a string value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
	// KindBool marks a boolean value.
	KindBool
	// KindDate marks a date or datetime value.
	KindDate
)

// String returns the kind name used in serialized output.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "absent"
	}
}

// Value is one scalar spreadsheet cell value.
type Value struct {
	// Kind is the value type.
	Kind Kind `json:"kind"`
	// Text is the display string as read from the file. Empty for absent cells.
	Text string `json:"text,omitempty"`
	// Number is the parsed numeric value (valid when Kind is KindNumber).
	Number float64 `json:"number,omitempty"`
	// Bool is the parsed boolean value (valid when Kind is KindBool).
	Bool bool `json:"bool,omitempty"`
	// Date is the parsed date value (valid when Kind is KindDate).
	Date time.Time `json:"date,omitempty"`
}

// Absent returns the empty-cell value.
func Absent() Value {
	return Value{Kind: KindAbsent}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value keeping its original display string.
func Number(display string, n float64) Value {
	return Value{Kind: KindNumber, Text: display, Number: n}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	text := "FALSE"
	if b {
		text = "TRUE"
	}
	return Value{Kind: KindBool, Text: text, Bool: b}
}

// Date returns a date value keeping its original display string.
func Date(display string, t time.Time) Value {
	return Value{Kind: KindDate, Text: display, Date: t}
}

// IsAbsent reports whether the value represents an empty cell.
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// Canonical returns the comparison form of the value. Two values are equal
// exactly when their kinds and canonical forms are equal.
func (v Value) Canonical() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindDate:
		return v.Date.UTC().Format(time.RFC3339)
	case KindAbsent:
		return ""
	default:
		return v.Text
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.Kind == o.Kind && v.Canonical() == o.Canonical()
}

// String returns the display string of the value. Absent cells render empty.
func (v Value) String() string {
	return v.Text
}
