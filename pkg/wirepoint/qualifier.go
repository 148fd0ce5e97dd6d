package wirepoint

import "strings"

// DependencyKey identifies a resolved dependency by declared type plus
// identifying string. Keys are compared exactly: "" and "default" are
// distinct identifiers.
//
// The external object-graph builder uses keys for its instance caches;
// this package only computes them.
type DependencyKey string

// Key composes a dependency key from the declared type and an
// identifying string (qualifier, configured id, or empty). Plain
// concatenation, no normalization.
func Key(dependencyType TypeRef, dependencyID string) DependencyKey {
	return DependencyKey(dependencyType.Name + ":" + dependencyID)
}

// QualifierOf returns the value attribute of the first annotation whose
// type name ends in .Named or .Qualifier. ok is false when no such
// annotation is present.
func QualifierOf(annotations []Annotation) (qualifier string, ok bool) {
	for _, annotation := range annotations {
		if strings.HasSuffix(annotation.Type, namedSuffix) || strings.HasSuffix(annotation.Type, qualifierSuffix) {
			return annotation.GetString("value"), true
		}
	}
	return "", false
}
