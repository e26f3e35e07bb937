package errors

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ConfigurationError.
type ErrorKind string

const (
	KindDuplicateAxis  ErrorKind = "DUPLICATE_AXIS"
	KindEmptyLegalSet  ErrorKind = "EMPTY_LEGAL_SET"
	KindInvalidDefault ErrorKind = "INVALID_DEFAULT"
	KindUnknownAxis    ErrorKind = "UNKNOWN_AXIS"
	KindInvalidValue   ErrorKind = "INVALID_VALUE"
	KindDuplicateValue ErrorKind = "DUPLICATE_VALUE"
	KindInvalidName    ErrorKind = "INVALID_NAME"
	KindFrozen         ErrorKind = "FROZEN"
)

// String returns the kind identifier.
func (k ErrorKind) String() string {
	return string(k)
}

// Sentinels for errors.Is comparisons. They match any ConfigurationError of the
// same kind regardless of axis.
var (
	ErrDuplicateAxis  = &ConfigurationError{Kind: KindDuplicateAxis}
	ErrEmptyLegalSet  = &ConfigurationError{Kind: KindEmptyLegalSet}
	ErrInvalidDefault = &ConfigurationError{Kind: KindInvalidDefault}
	ErrUnknownAxis    = &ConfigurationError{Kind: KindUnknownAxis}
	ErrInvalidValue   = &ConfigurationError{Kind: KindInvalidValue}
	ErrDuplicateValue = &ConfigurationError{Kind: KindDuplicateValue}
	ErrInvalidName    = &ConfigurationError{Kind: KindInvalidName}
	ErrFrozen         = &ConfigurationError{Kind: KindFrozen}
)

// ConfigurationError reports an illegal axis definition or resolution request.
// Axis, Value and Legal are populated whenever the kind has them so callers can
// render a precise diagnostic.
type ConfigurationError struct {
	Kind    ErrorKind
	Axis    string
	Value   string
	Legal   []string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Axis != "" {
		return fmt.Sprintf("configuration error: axis %q: %s", e.Axis, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is matches another ConfigurationError with the same kind. An empty Axis on the
// target matches any axis.
func (e *ConfigurationError) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*ConfigurationError)
	if !ok || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Axis == "" || t.Axis == e.Axis
}

// NewDuplicateAxisError reports an axis that is already registered.
func NewDuplicateAxisError(axis string) error {
	return &ConfigurationError{Kind: KindDuplicateAxis, Axis: axis, Message: "axis is already defined"}
}

// NewEmptyLegalSetError reports an axis defined without legal values.
func NewEmptyLegalSetError(axis string) error {
	return &ConfigurationError{Kind: KindEmptyLegalSet, Axis: axis, Message: "at least one legal value is required"}
}

// NewInvalidDefaultError reports a default that is not one of the legal values.
func NewInvalidDefaultError(axis, value string, legal []string) error {
	return &ConfigurationError{
		Kind:    KindInvalidDefault,
		Axis:    axis,
		Value:   value,
		Legal:   cloneStrings(legal),
		Message: fmt.Sprintf("default %q is not valid, must be one of: %s", value, strings.Join(legal, ", ")),
	}
}

// NewUnknownAxisError reports a reference to an axis that was never registered.
func NewUnknownAxisError(axis string) error {
	return &ConfigurationError{Kind: KindUnknownAxis, Axis: axis, Message: "axis is not defined"}
}

// NewInvalidValueError reports a requested value outside the axis' legal set.
func NewInvalidValueError(axis, value string, legal []string) error {
	return &ConfigurationError{
		Kind:    KindInvalidValue,
		Axis:    axis,
		Value:   value,
		Legal:   cloneStrings(legal),
		Message: fmt.Sprintf("%q is not valid, must be one of: %s", value, strings.Join(legal, ", ")),
	}
}

// NewDuplicateValueError reports a token listed twice in one legal set.
func NewDuplicateValueError(axis, value string) error {
	return &ConfigurationError{
		Kind:    KindDuplicateValue,
		Axis:    axis,
		Value:   value,
		Message: fmt.Sprintf("value %q is listed more than once", value),
	}
}

// NewInvalidNameError reports a malformed axis name or value token.
func NewInvalidNameError(axis, value, message string) error {
	return &ConfigurationError{Kind: KindInvalidName, Axis: axis, Value: value, Message: message}
}

// NewFrozenError reports a definition attempted after the registry was frozen.
func NewFrozenError(axis string) error {
	return &ConfigurationError{Kind: KindFrozen, Axis: axis, Message: "registry is frozen, axes can no longer be defined"}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
