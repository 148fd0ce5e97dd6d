package wirepoint

// ClassificationKind represents the classification of an injection point
type ClassificationKind int

const (
	NotAnnotated ClassificationKind = iota
	Required
	Optional
	WithValue
)

// String returns the string representation of the classification kind
func (k ClassificationKind) String() string {
	switch k {
	case NotAnnotated:
		return "not-annotated"
	case Required:
		return "required"
	case Optional:
		return "optional"
	case WithValue:
		return "with-value"
	default:
		return "unknown"
	}
}

// TypeKind represents the shape of a declared type
type TypeKind int

const (
	ObjectKind TypeKind = iota
	StringKind
	BoolKind
	IntKind
	Int64Kind
	Float32Kind
	Float64Kind
	UUIDKind
	EnumKind
	ArrayKind
	ParameterizedKind
)

// String returns the string representation of the type kind
func (k TypeKind) String() string {
	switch k {
	case ObjectKind:
		return "object"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case Int64Kind:
		return "int64"
	case Float32Kind:
		return "float32"
	case Float64Kind:
		return "float64"
	case UUIDKind:
		return "uuid"
	case EnumKind:
		return "enum"
	case ArrayKind:
		return "array"
	case ParameterizedKind:
		return "parameterized"
	default:
		return "unknown"
	}
}

// TypeRef describes a declared type at an injection point.
//
// Name is the fully-qualified type name as reported by the host's
// introspection facility. Elem is set for array types, Args for
// parameterized types, and EnumValues lists the named constants of an
// enumerated type.
type TypeRef struct {
	Name       string
	Kind       TypeKind
	Elem       *TypeRef
	Args       []TypeRef
	EnumValues []string
}

// ObjectType returns a TypeRef for a plain object type
func ObjectType(name string) TypeRef {
	return TypeRef{Name: name, Kind: ObjectKind}
}

// ScalarType returns a TypeRef for a scalar type with conversion rules
func ScalarType(name string, kind TypeKind) TypeRef {
	return TypeRef{Name: name, Kind: kind}
}

// ArrayType returns a TypeRef for an array of elem
func ArrayType(elem TypeRef) TypeRef {
	e := elem
	return TypeRef{Name: elem.Name + "[]", Kind: ArrayKind, Elem: &e}
}

// ParameterizedType returns a TypeRef for a generic type instantiation
func ParameterizedType(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Kind: ParameterizedKind, Args: args}
}

// EnumType returns a TypeRef for an enumerated type with its named constants
func EnumType(name string, values ...string) TypeRef {
	return TypeRef{Name: name, Kind: EnumKind, EnumValues: values}
}

// Annotation is a metadata annotation descriptor: a fully-qualified
// type name plus its attribute values, accessed by name.
//
// Descriptors are supplied by the host integration layer in declaration
// order, exactly as reported by its reflection facility.
type Annotation struct {
	Type       string         // Fully-qualified annotation type name
	Attributes map[string]any // Attribute values keyed by name
}

// GetString returns a string attribute value with optional default
func (a Annotation) GetString(name string, defaultValue ...string) string {
	if value, exists := a.Attributes[name]; exists {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a boolean attribute value with optional default
func (a Annotation) GetBool(name string, defaultValue ...bool) bool {
	if value, exists := a.Attributes[name]; exists {
		if boolValue, ok := value.(bool); ok {
			return boolValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// HasAttribute checks if an attribute exists
func (a Annotation) HasAttribute(name string) bool {
	_, exists := a.Attributes[name]
	return exists
}

// InjectionTarget is a candidate injection point: a field or a
// constructor parameter, described by its declared type and the
// annotations physically present on it.
//
// Constructors never receive value-injection treatment.
type InjectionTarget struct {
	Type        TypeRef
	Annotations []Annotation
	Constructor bool
}

// ClassMeta describes a class for feature predicates such as
// Capabilities.IsWebComponent.
type ClassMeta struct {
	Name         string
	AssignableTo []string // Fully-qualified names of supertypes and implemented interfaces
}

// IsAssignableTo reports whether the class is assignable to the named type
func (c ClassMeta) IsAssignableTo(typeName string) bool {
	if c.Name == typeName {
		return true
	}
	for _, name := range c.AssignableTo {
		if name == typeName {
			return true
		}
	}
	return false
}
