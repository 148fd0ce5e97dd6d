package wirepoint

import (
	"strconv"

	"github.com/google/uuid"
)

// EnumValue is a converted enumerated constant: the enum's type name
// plus the matched constant name.
type EnumValue struct {
	Type string
	Name string
}

// String returns the constant name
func (v EnumValue) String() string { return v.Name }

// ConvertFromString converts a raw string to an instance of the
// declared type, following the type's own textual-conversion rules.
// Unconvertible input or a declared type without conversion rules
// yields an *UnsupportedConversionError.
func ConvertFromString(declaredType TypeRef, raw string) (any, error) {
	switch declaredType.Kind {
	case StringKind:
		return raw, nil

	case BoolKind:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return value, nil

	case IntKind:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return value, nil

	case Int64Kind:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return value, nil

	case Float32Kind:
		value, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return float32(value), nil

	case Float64Kind:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return value, nil

	case UUIDKind:
		value, err := uuid.Parse(raw)
		if err != nil {
			return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw, Cause: err}
		}
		return value, nil

	case EnumKind:
		for _, name := range declaredType.EnumValues {
			if name == raw {
				return EnumValue{Type: declaredType.Name, Name: name}, nil
			}
		}
		return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw}

	default:
		return nil, &UnsupportedConversionError{TypeName: declaredType.Name, Value: raw}
	}
}

// ComponentType returns the element type of an array declared type,
// for variadic injection targets. The element of a generic array is
// itself a parameterized TypeRef, so both concrete and generic arrays
// are covered. Calling with a non-array type is a caller contract
// violation and returns an *InvalidComponentTypeError.
func ComponentType(declaredType TypeRef) (TypeRef, error) {
	if declaredType.Kind != ArrayKind || declaredType.Elem == nil {
		return TypeRef{}, &InvalidComponentTypeError{TypeName: declaredType.Name}
	}
	return *declaredType.Elem, nil
}
