package wirepoint

import "strings"

// Annotation type-name suffixes matched without a compile-time
// dependency on the defining library. Suffix matching is deliberate:
// several unrelated libraries define similarly-named annotations and
// all of them must be recognized.
const (
	autowiredSuffix = ".Autowired"
	valueSuffix     = ".Value"
	namedSuffix     = ".Named"
	qualifierSuffix = ".Qualifier"
)

// Classifier decides whether an injection target is an injection point
// and, if so, whether its dependency is required, optional, or an
// externalized value. Classification is a pure function of the target's
// annotations and the capability table; it never fails.
type Classifier struct {
	caps *Capabilities
}

// NewClassifier creates a classifier over the given capability table.
// A nil table means the process-wide default.
func NewClassifier(caps *Capabilities) *Classifier {
	if caps == nil {
		caps = DefaultCapabilities()
	}
	return &Classifier{caps: caps}
}

// Classify returns the classification of the target. Precedence, first
// match wins:
//
//  1. no annotations: NotAnnotated
//  2. standard injection marker (when available): Required
//  3. an .Autowired marker: Required unless required=false, then Optional
//  4. constructors stop here: NotAnnotated
//  5. a .Value marker: WithValue
//  6. a resource, enterprise-component, or persistence marker: Required
//  7. otherwise: NotAnnotated
//
// Standard injection deliberately outranks the looser string-matched
// conventions; mixed-convention codebases rely on this exact order.
func (c *Classifier) Classify(target InjectionTarget) ClassificationKind {
	annotations := target.Annotations

	if len(annotations) == 0 {
		return NotAnnotated
	}

	if c.caps.IsAvailable(StandardInjection) && hasAnnotation(annotations, injectMarker) {
		return Required
	}

	kind := autowiredKind(annotations)

	if kind != NotAnnotated || target.Constructor {
		return kind
	}

	if _, ok := firstWithSuffix(annotations, valueSuffix); ok {
		return WithValue
	}

	if c.isResourceRequired(annotations) {
		return Required
	}

	return NotAnnotated
}

// autowiredKind resolves the first .Autowired marker. An absent
// required attribute defaults to true.
func autowiredKind(annotations []Annotation) ClassificationKind {
	annotation, ok := firstWithSuffix(annotations, autowiredSuffix)
	if !ok {
		return NotAnnotated
	}
	if annotation.GetBool("required", true) {
		return Required
	}
	return Optional
}

// isResourceRequired checks the resource-style conventions, each gated
// on its own marker availability.
func (c *Classifier) isResourceRequired(annotations []Annotation) bool {
	if hasAnnotation(annotations, resourceMarker) {
		return true
	}
	if c.caps.IsAvailable(EnterpriseComponent) && hasAnnotation(annotations, ejbMarker) {
		return true
	}
	if c.caps.IsAvailable(PersistenceContext) && hasAnnotation(annotations, persistenceContextMarker) {
		return true
	}
	if c.caps.IsAvailable(PersistenceUnit) && hasAnnotation(annotations, persistenceUnitMarker) {
		return true
	}
	return false
}

// hasAnnotation reports whether an annotation with the exact type name is present
func hasAnnotation(annotations []Annotation, typeName string) bool {
	for _, annotation := range annotations {
		if annotation.Type == typeName {
			return true
		}
	}
	return false
}

// firstWithSuffix returns the first annotation whose type name ends in suffix
func firstWithSuffix(annotations []Annotation, suffix string) (Annotation, bool) {
	for _, annotation := range annotations {
		if strings.HasSuffix(annotation.Type, suffix) {
			return annotation, true
		}
	}
	return Annotation{}, false
}
