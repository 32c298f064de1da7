package errors

import (
	stderrors "errors"
	"fmt"
)

// ConfigError reports a defect in the site configuration supplied by the
// site owner. Component is the resolver stage that rejected the input, Field
// the dotted path inside the configuration.
type ConfigError struct {
	Component string
	Field     string
	Reason    string
}

// NewConfigError returns a ConfigError for component/field with reason.
func NewConfigError(component, field, reason string) *ConfigError {
	return &ConfigError{Component: component, Field: field, Reason: reason}
}

// Error renders the error as "component: field: reason".
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Field, e.Reason)
}

// Is matches another ConfigError with identical component, field and reason.
func (e *ConfigError) Is(target error) bool {
	other, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return *e == *other
}

// Classify converts e into a fatal CategoryConfig ClassifiedError.
func (e *ConfigError) Classify() *ClassifiedError {
	return ConfigFailure(e.Error()).
		WithContext("component", e.Component).
		WithContext("field", e.Field).
		WithContext("reason", e.Reason).
		Build()
}

// AsConfigError finds the first ConfigError in err's chain.
func AsConfigError(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	if stderrors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}
