// Package wirepoint classifies injection points and resolves their
// values for an external object-graph builder.
//
// Given a field or constructor parameter described by an
// InjectionTarget, it decides whether the target is an injection point
// at all, whether a missing dependency is fatal or tolerable, and
// whether the target wants a literal configuration value instead of an
// object dependency. It also computes dependency lookup keys, extracts
// qualifiers, converts externalized string values to the declared type,
// and adapts resolved values to deferred-access providers.
//
// Six annotation conventions are reconciled under one strict precedence
// order: standard injection, autowiring, value injection, resource,
// enterprise-component, and persistence markers. Conventions absent
// from the running environment are recorded in a Capabilities table
// built once at startup and are simply never matched.
//
// All operations are synchronous pure functions over their inputs;
// concurrent callers need no coordination.
package wirepoint
