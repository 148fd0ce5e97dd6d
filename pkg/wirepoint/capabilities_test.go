package wirepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCapabilities_RecordsProbeResults(t *testing.T) {
	probed := make(map[string]bool)
	caps := NewCapabilities(func(typeName string) bool {
		probed[typeName] = true
		return typeName == "javax.inject.Inject" || typeName == "javax.ejb.EJB"
	})

	assert.True(t, caps.IsAvailable(StandardInjection))
	assert.True(t, caps.IsAvailable(EnterpriseComponent))
	assert.False(t, caps.IsAvailable(PersistenceUnit))
	assert.False(t, caps.IsAvailable(PersistenceContext))
	assert.False(t, caps.IsAvailable(WebComponent))
	assert.False(t, caps.IsAvailable(ConversationScope))

	// Every marker is probed exactly once, at construction.
	assert.Len(t, probed, len(AllConventions()))
}

func TestNewCapabilities_NilProbe(t *testing.T) {
	caps := NewCapabilities(nil)
	for _, convention := range AllConventions() {
		assert.False(t, caps.IsAvailable(convention), convention.String())
	}
}

func TestNewCapabilities_PanickingProbeMarksUnavailable(t *testing.T) {
	caps := NewCapabilities(func(typeName string) bool {
		if typeName == "javax.servlet.Servlet" {
			panic("broken type loader")
		}
		return true
	})

	assert.False(t, caps.IsAvailable(WebComponent))
	assert.True(t, caps.IsAvailable(StandardInjection))
}

func TestDefaultCapabilities(t *testing.T) {
	// Same instance every call, everything available.
	caps1 := DefaultCapabilities()
	caps2 := DefaultCapabilities()
	assert.Same(t, caps1, caps2)

	for _, convention := range AllConventions() {
		assert.True(t, caps1.IsAvailable(convention), convention.String())
	}
}

func TestIsWebComponent(t *testing.T) {
	servlet := ClassMeta{
		Name:         "com.app.web.UploadServlet",
		AssignableTo: []string{"javax.servlet.http.HttpServlet", "javax.servlet.Servlet"},
	}
	plain := ClassMeta{Name: "com.app.Repo"}

	caps := DefaultCapabilities()
	assert.True(t, caps.IsWebComponent(servlet))
	assert.False(t, caps.IsWebComponent(plain))

	// Predicate is false whenever the marker is unavailable.
	noServlet := NewCapabilities(func(typeName string) bool {
		return typeName != WebComponent.MarkerTypeName()
	})
	assert.False(t, noServlet.IsWebComponent(servlet))
}

func TestConvention_MarkerTypeNames(t *testing.T) {
	expected := map[Convention]string{
		StandardInjection:   "javax.inject.Inject",
		EnterpriseComponent: "javax.ejb.EJB",
		PersistenceUnit:     "javax.persistence.PersistenceUnit",
		PersistenceContext:  "javax.persistence.PersistenceContext",
		WebComponent:        "javax.servlet.Servlet",
		ConversationScope:   "javax.enterprise.context.Conversation",
	}
	for convention, name := range expected {
		assert.Equal(t, name, convention.MarkerTypeName())
	}
}
