package cli

import (
	"fmt"
	"strings"

	"github.com/toyz/wirepoint/pkg/wirepoint"
)

// scalarKinds maps well-known type names to their conversion kinds
var scalarKinds = map[string]wirepoint.TypeKind{
	"int":              wirepoint.IntKind,
	"long":             wirepoint.Int64Kind,
	"boolean":          wirepoint.BoolKind,
	"float":            wirepoint.Float32Kind,
	"double":           wirepoint.Float64Kind,
	"String":           wirepoint.StringKind,
	"java.lang.String": wirepoint.StringKind,
	"UUID":             wirepoint.UUIDKind,
	"java.util.UUID":   wirepoint.UUIDKind,
}

// typeAliases maps convenient aliases to their full type names
var typeAliases = map[string]string{
	"Provider": wirepoint.ProviderTypeName,
}

// ParseTypeRef parses a declared-type expression from a descriptor file:
//
//	int                         scalar with conversion rules
//	com.app.Repo                plain object type
//	com.app.Bar[]               array
//	Provider<com.app.Foo>       parameterized (Provider is an alias)
//	com.app.Mode{A,B}           enum with its named constants
func ParseTypeRef(s string) (wirepoint.TypeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return wirepoint.TypeRef{}, fmt.Errorf("empty type expression")
	}

	if strings.HasSuffix(s, "[]") {
		elem, err := ParseTypeRef(s[:len(s)-2])
		if err != nil {
			return wirepoint.TypeRef{}, err
		}
		return wirepoint.ArrayType(elem), nil
	}

	if open := strings.Index(s, "<"); open > 0 {
		if !strings.HasSuffix(s, ">") {
			return wirepoint.TypeRef{}, fmt.Errorf("unterminated type arguments in %q", s)
		}
		name := resolveTypeAlias(s[:open])
		args, err := parseTypeArgs(s[open+1 : len(s)-1])
		if err != nil {
			return wirepoint.TypeRef{}, err
		}
		return wirepoint.ParameterizedType(name, args...), nil
	}

	if open := strings.Index(s, "{"); open > 0 {
		if !strings.HasSuffix(s, "}") {
			return wirepoint.TypeRef{}, fmt.Errorf("unterminated enum constants in %q", s)
		}
		values := splitTopLevel(s[open+1 : len(s)-1])
		return wirepoint.EnumType(s[:open], values...), nil
	}

	if kind, ok := scalarKinds[s]; ok {
		return wirepoint.ScalarType(s, kind), nil
	}

	return wirepoint.ObjectType(s), nil
}

// parseTypeArgs parses a comma-separated list of type expressions
func parseTypeArgs(s string) ([]wirepoint.TypeRef, error) {
	parts := splitTopLevel(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty type argument list")
	}

	args := make([]wirepoint.TypeRef, 0, len(parts))
	for _, part := range parts {
		arg, err := ParseTypeRef(part)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// splitTopLevel splits on commas outside nested angle brackets or braces
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	current := strings.Builder{}

	for _, char := range s {
		switch char {
		case '<', '{':
			depth++
			current.WriteRune(char)
		case '>', '}':
			depth--
			current.WriteRune(char)
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(char)
			}
		default:
			current.WriteRune(char)
		}
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		parts = append(parts, trimmed)
	}

	return parts
}

// resolveTypeAlias resolves a type alias to its actual type name
func resolveTypeAlias(name string) string {
	if actual, isAlias := typeAliases[name]; isAlias {
		return actual
	}
	return name
}
