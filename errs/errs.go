// Package errs defines the error-kind taxonomy shared across the radiative
// transfer packages, following the component-prefixed fmt.Errorf convention
// used throughout this codebase but with a recoverable Kind attached so
// callers can distinguish validation failures from internal bugs.
package errs

import (
	"fmt"
	"strings"
)

// Kind classifies a failure without naming a concrete Go type.
type Kind int

const (
	// InvalidDimension marks array sizes inconsistent with a declared grid
	// or profile size.
	InvalidDimension Kind = iota
	// InvalidBounds marks a value outside its documented domain (SZA,
	// albedo, log-grid bounds, ...).
	InvalidBounds
	// MissingEntity marks a warehouse lookup of an absent name/handle, or
	// an attempt to add a duplicate one.
	MissingEntity
	// NumericInvalid marks a NaN or infinite value reaching a boundary
	// that must reject it.
	NumericInvalid
	// InternalInvariant marks a condition the implementation believes
	// cannot occur.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidDimension:
		return "InvalidDimension"
	case InvalidBounds:
		return "InvalidBounds"
	case MissingEntity:
		return "MissingEntity"
	case NumericInvalid:
		return "NumericInvalid"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is a single typed failure, carrying the package/symbol that raised
// it so the message reads the same way the rest of this codebase's
// "pkg.Func: detail" errors do.
type Error struct {
	Kind      Kind
	Component string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Message)
}

// New constructs an *Error with a formatted message.
func New(kind Kind, component, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Component: component, Message: fmt.Sprintf(format, args...)}
}

// Aggregate collects several *Error values into one error whose message
// joins them with "; ". The zero value is ready to use. model.Calculate
// does not build one: it returns the first error it meets, as is.
type Aggregate struct {
	Errors []*Error
}

// Add appends an error to the aggregate if it is non-nil.
func (a *Aggregate) Add(err *Error) {
	if err == nil {
		return
	}
	a.Errors = append(a.Errors, err)
}

// HasErrors reports whether any error has been recorded.
func (a *Aggregate) HasErrors() bool {
	return len(a.Errors) > 0
}

// ErrOrNil returns the aggregate as an error if non-empty, or nil otherwise,
// so callers can write `return a.ErrOrNil()` after collecting errors.
func (a *Aggregate) ErrOrNil() error {
	if !a.HasErrors() {
		return nil
	}
	return a
}

func (a *Aggregate) Error() string {
	parts := make([]string, len(a.Errors))
	for i, e := range a.Errors {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
