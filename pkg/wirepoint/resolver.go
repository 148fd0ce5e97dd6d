package wirepoint

// ProviderTypeName is the fully-qualified name of the deferred-access
// wrapper type recognized by WrapInProviderIfNeeded.
const ProviderTypeName = "javax.inject.Provider"

// Provider is a deferred-access wrapper over an already-resolved value.
// Get returns the same instance every time; nothing is recomputed.
type Provider interface {
	Get() any
}

// resolvedProvider adapts a resolved value to the Provider interface
type resolvedProvider struct {
	value any
}

func (p resolvedProvider) Get() any { return p.value }

// Resolver computes converted and wrapped values for classified
// injection points. It is stateless apart from the capability table.
type Resolver struct {
	caps *Capabilities
}

// NewResolver creates a resolver over the given capability table.
// A nil table means the process-wide default.
func NewResolver(caps *Capabilities) *Resolver {
	if caps == nil {
		caps = DefaultCapabilities()
	}
	return &Resolver{caps: caps}
}

// ValueFromAnnotation locates the first .Value annotation on the field,
// reads its value attribute, and converts it to the field's declared
// type. An absent annotation or attribute yields (nil, nil) rather than
// an error; conventions vary in which attributes they define. A present
// but unconvertible value fails loudly.
func (r *Resolver) ValueFromAnnotation(field InjectionTarget) (any, error) {
	annotation, ok := firstWithSuffix(field.Annotations, valueSuffix)
	if !ok || !annotation.HasAttribute("value") {
		return nil, nil
	}
	return ConvertFromString(field.Type, annotation.GetString("value"))
}

// WrapInProviderIfNeeded wraps value in a Provider when the declared
// type is a parameterized provider type and value is not already a
// Provider; otherwise value is returned unchanged. The wrap is skipped
// entirely when the standard-injection convention is unavailable.
// Idempotent: wrapping an existing Provider returns it as-is.
func (r *Resolver) WrapInProviderIfNeeded(declaredType TypeRef, value any) any {
	if !r.caps.IsAvailable(StandardInjection) {
		return value
	}
	if declaredType.Kind != ParameterizedKind || declaredType.Name != ProviderTypeName {
		return value
	}
	if _, alreadyWrapped := value.(Provider); alreadyWrapped {
		return value
	}
	return resolvedProvider{value: value}
}
