package wirepoint

import "fmt"

// UnsupportedConversionError is returned when an externalized string
// value cannot be converted to the field's declared type. It is never
// silently defaulted: a wrong configuration value must surface.
type UnsupportedConversionError struct {
	TypeName string // Fully-qualified name of the declared type
	Value    string // The raw string value that failed to convert
	Cause    error  // Underlying parse error, if any
}

// Error implements the error interface
func (e *UnsupportedConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.TypeName, e.Cause)
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Value, e.TypeName)
}

// Unwrap returns the underlying parse error
func (e *UnsupportedConversionError) Unwrap() error { return e.Cause }

// InvalidComponentTypeError is returned when ComponentType is called on
// a non-array declared type. It indicates a bug in the caller's target
// classification, not a recoverable condition.
type InvalidComponentTypeError struct {
	TypeName string // Fully-qualified name of the offending type
}

// Error implements the error interface
func (e *InvalidComponentTypeError) Error() string {
	return fmt.Sprintf("type %s is not an array type", e.TypeName)
}
