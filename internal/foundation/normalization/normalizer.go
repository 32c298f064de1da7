// Package normalization maps loosely written configuration strings onto
// typed enum values.
package normalization

import (
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// Blank input resolves to defaultValue.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	for k, v := range values {
		key := normalize(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Parse converts raw to the enum type. Blank input yields the default; an
// unrecognised value yields the zero value and false.
func (n *Normalizer[T]) Parse(raw string) (T, bool) {
	cleaned := normalize(raw)
	if cleaned == "" {
		return n.defaultValue, true
	}
	if value, ok := n.validValues[cleaned]; ok {
		return value, true
	}
	var zero T
	return zero, false
}

// Normalize is Parse with unknown values mapped to the default.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.Parse(raw); ok {
		return v
	}
	return n.defaultValue
}

// ValidKeys returns all valid normalized keys in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

// OneOf renders the valid keys for error messages, e.g. "left|right".
func (n *Normalizer[T]) OneOf() string {
	return strings.Join(n.validKeys, "|")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
