package utils

import "fmt"

// Error wrapping helpers shared across the CLI packages, to keep
// failure messages consistently formatted.

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapReadError wraps an error with a "failed to read" message
func WrapReadError(item string, err error) error {
	return fmt.Errorf("failed to read %s: %w", item, err)
}

// WrapResolveError wraps an error with a "failed to resolve" message
func WrapResolveError(item string, err error) error {
	return fmt.Errorf("failed to resolve %s: %w", item, err)
}
