package wirepoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFromAnnotation_ConvertsToDeclaredType(t *testing.T) {
	resolver := NewResolver(nil)

	field := InjectionTarget{
		Type: ScalarType("int", IntKind),
		Annotations: []Annotation{
			anno("org.springframework.beans.factory.annotation.Value", map[string]any{"value": "42"}),
		},
	}

	value, err := resolver.ValueFromAnnotation(field)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestValueFromAnnotation_FirstValueAnnotationWins(t *testing.T) {
	resolver := NewResolver(nil)

	field := InjectionTarget{
		Type: ScalarType("java.lang.String", StringKind),
		Annotations: []Annotation{
			anno("com.app.config.Value", map[string]any{"value": "first"}),
			anno("org.springframework.beans.factory.annotation.Value", map[string]any{"value": "second"}),
		},
	}

	value, err := resolver.ValueFromAnnotation(field)
	require.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestValueFromAnnotation_AbsentIsNotAnError(t *testing.T) {
	resolver := NewResolver(nil)

	// No .Value annotation at all.
	field := InjectionTarget{
		Type:        ScalarType("int", IntKind),
		Annotations: []Annotation{marker("javax.inject.Inject")},
	}
	value, err := resolver.ValueFromAnnotation(field)
	require.NoError(t, err)
	assert.Nil(t, value)

	// A .Value annotation without a value attribute.
	field = InjectionTarget{
		Type:        ScalarType("int", IntKind),
		Annotations: []Annotation{marker("com.app.config.Value")},
	}
	value, err = resolver.ValueFromAnnotation(field)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestValueFromAnnotation_ConversionFailureSurfaces(t *testing.T) {
	resolver := NewResolver(nil)

	field := InjectionTarget{
		Type: ScalarType("int", IntKind),
		Annotations: []Annotation{
			anno("org.springframework.beans.factory.annotation.Value", map[string]any{"value": "not-a-number"}),
		},
	}

	_, err := resolver.ValueFromAnnotation(field)
	require.Error(t, err)

	var convErr *UnsupportedConversionError
	assert.True(t, errors.As(err, &convErr))
}

type fooService struct{ name string }

func TestWrapInProviderIfNeeded(t *testing.T) {
	resolver := NewResolver(nil)
	providerType := ParameterizedType(ProviderTypeName, ObjectType("com.app.Foo"))
	foo := &fooService{name: "foo"}

	wrapped := resolver.WrapInProviderIfNeeded(providerType, foo)
	provider, ok := wrapped.(Provider)
	require.True(t, ok)

	// The same instance comes back on every access.
	assert.Same(t, foo, provider.Get().(*fooService))
	assert.Same(t, foo, provider.Get().(*fooService))
}

func TestWrapInProviderIfNeeded_Idempotent(t *testing.T) {
	resolver := NewResolver(nil)
	providerType := ParameterizedType(ProviderTypeName, ObjectType("com.app.Foo"))
	foo := &fooService{name: "foo"}

	wrapped := resolver.WrapInProviderIfNeeded(providerType, foo)
	rewrapped := resolver.WrapInProviderIfNeeded(providerType, wrapped)
	assert.Equal(t, wrapped, rewrapped)
}

func TestWrapInProviderIfNeeded_NonProviderTypeUnchanged(t *testing.T) {
	resolver := NewResolver(nil)
	foo := &fooService{name: "foo"}

	assert.Same(t, foo, resolver.WrapInProviderIfNeeded(ObjectType("com.app.Foo"), foo).(*fooService))

	// A parameterized type that is not the provider type stays unwrapped.
	listType := ParameterizedType("java.util.List", ObjectType("com.app.Foo"))
	assert.Same(t, foo, resolver.WrapInProviderIfNeeded(listType, foo).(*fooService))
}

func TestWrapInProviderIfNeeded_SkippedWhenInjectUnavailable(t *testing.T) {
	caps := NewCapabilities(func(typeName string) bool {
		return typeName != StandardInjection.MarkerTypeName()
	})
	resolver := NewResolver(caps)
	providerType := ParameterizedType(ProviderTypeName, ObjectType("com.app.Foo"))
	foo := &fooService{name: "foo"}

	assert.Same(t, foo, resolver.WrapInProviderIfNeeded(providerType, foo).(*fooService))
}
