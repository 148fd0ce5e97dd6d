package wirepoint

import (
	"fmt"
	"sync"
)

// Convention represents one recognized family of injection-annotation semantics
type Convention int

const (
	StandardInjection Convention = iota
	EnterpriseComponent
	PersistenceUnit
	PersistenceContext
	WebComponent
	ConversationScope
)

// String returns the string representation of the convention
func (c Convention) String() string {
	switch c {
	case StandardInjection:
		return "inject"
	case EnterpriseComponent:
		return "ejb"
	case PersistenceUnit:
		return "persistence-unit"
	case PersistenceContext:
		return "persistence-context"
	case WebComponent:
		return "servlet"
	case ConversationScope:
		return "conversation"
	default:
		return "unknown"
	}
}

// Marker type names matched exactly. Resource is part of the base
// platform and is never gated on a capability.
const (
	injectMarker             = "javax.inject.Inject"
	resourceMarker           = "javax.annotation.Resource"
	ejbMarker                = "javax.ejb.EJB"
	persistenceUnitMarker    = "javax.persistence.PersistenceUnit"
	persistenceContextMarker = "javax.persistence.PersistenceContext"
	servletMarker            = "javax.servlet.Servlet"
	conversationMarker       = "javax.enterprise.context.Conversation"
)

// ParseConvention converts string to Convention
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "inject":
		return StandardInjection, nil
	case "ejb":
		return EnterpriseComponent, nil
	case "persistence-unit":
		return PersistenceUnit, nil
	case "persistence-context":
		return PersistenceContext, nil
	case "servlet":
		return WebComponent, nil
	case "conversation":
		return ConversationScope, nil
	default:
		return 0, fmt.Errorf("unknown convention: %s", s)
	}
}

// MarkerTypeName returns the fully-qualified name of the marker type
// probed for this convention.
func (c Convention) MarkerTypeName() string {
	switch c {
	case StandardInjection:
		return injectMarker
	case EnterpriseComponent:
		return ejbMarker
	case PersistenceUnit:
		return persistenceUnitMarker
	case PersistenceContext:
		return persistenceContextMarker
	case WebComponent:
		return servletMarker
	case ConversationScope:
		return conversationMarker
	default:
		return ""
	}
}

// AllConventions returns every supported convention
func AllConventions() []Convention {
	return []Convention{
		StandardInjection,
		EnterpriseComponent,
		PersistenceUnit,
		PersistenceContext,
		WebComponent,
		ConversationScope,
	}
}

// TypeProbe reports whether a marker type with the given fully-qualified
// name exists in the host's type universe.
type TypeProbe func(typeName string) bool

// Capabilities records which injection conventions are available in the
// running environment. It is built once and read-only afterwards, so it
// is safe for unsynchronized concurrent reads.
type Capabilities struct {
	available map[Convention]bool
}

// NewCapabilities probes each convention's marker type and records the
// result. Probe failures (including panics) mark the convention
// unavailable; probing never fails.
func NewCapabilities(probe TypeProbe) *Capabilities {
	available := make(map[Convention]bool, len(AllConventions()))
	for _, convention := range AllConventions() {
		available[convention] = probeMarker(probe, convention.MarkerTypeName())
	}
	return &Capabilities{available: available}
}

// probeMarker converts probe panics into "unavailable".
func probeMarker(probe TypeProbe, typeName string) (ok bool) {
	if probe == nil {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
		}
	}()
	return probe(typeName)
}

// IsAvailable reports whether the convention's marker type was found
func (c *Capabilities) IsAvailable(convention Convention) bool {
	return c.available[convention]
}

// IsWebComponent reports whether the class is a web component. It is
// always false when the WebComponent marker is unavailable.
func (c *Capabilities) IsWebComponent(class ClassMeta) bool {
	return c.IsAvailable(WebComponent) && class.IsAssignableTo(WebComponent.MarkerTypeName())
}

var (
	defaultCapabilities     *Capabilities
	defaultCapabilitiesOnce sync.Once
)

// DefaultCapabilities returns the process-wide capability table, with
// every convention available. Hosts running with a subset of the
// supported ecosystems build their own table via NewCapabilities.
func DefaultCapabilities() *Capabilities {
	defaultCapabilitiesOnce.Do(func() {
		defaultCapabilities = NewCapabilities(func(string) bool { return true })
	})
	return defaultCapabilities
}
