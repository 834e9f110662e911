// Package datatype defines the data types a translated value may carry and
// maps R column classes onto them.
package datatype

import (
	"errors"
	"fmt"
)

// DataType is a markup data type name (e.g., "double")
type DataType string

const (
	// Unknown means the type is left to the consumer to infer.
	Unknown DataType = ""
	String  DataType = "string"
	Integer DataType = "integer"
	Double  DataType = "double"
	Boolean DataType = "boolean"
)

// ErrUnsupportedClass is returned when an R class has no data type mapping.
var ErrUnsupportedClass = errors.New("datatype: unsupported R class")

// rClasses maps R column classes to data types
var rClasses = map[string]DataType{
	"factor":  String,
	"numeric": Double,
	"logical": Boolean,
}

// FromRClass returns the data type used for an R column of the given class.
func FromRClass(class string) (DataType, error) {
	if dt, ok := rClasses[class]; ok {
		return dt, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedClass, class)
}

// IsKnown reports whether the type was determined.
func (d DataType) IsKnown() bool {
	return d != Unknown
}

// String returns the type name, or "unknown" for the zero value.
func (d DataType) String() string {
	if d == Unknown {
		return "unknown"
	}
	return string(d)
}
