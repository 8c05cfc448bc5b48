// Package errors provides structured diagnostics for the binding dispatcher.
//
// Property updates never return errors to their caller. Conditions worth
// surfacing (an unknown property path, a recovered panic inside an element,
// an undeliverable platform message) are reported to a process-wide
// [ErrorHandler] instead.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnknownProperty indicates an update for a property path with no updater.
	KindUnknownProperty
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a payload that could not be decoded.
	KindParsing
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownProperty:
		return "unknown-property"
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrUnknownProperty is wrapped by errors reported for unregistered property paths.
var ErrUnknownProperty = errors.New("unknown property")

// BindingError represents a structured diagnostic.
type BindingError struct {
	// Op is the operation that failed (e.g., "bindings.Apply").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Property is the property path involved, if any.
	Property string
	// Tag is the element tag involved, or zero.
	Tag int
	// Channel is the platform channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindingError) Error() string {
	msg := e.Op + " [" + e.Kind.String() + "]"
	if e.Property != "" {
		msg += fmt.Sprintf(" property=%q", e.Property)
	}
	if e.Tag != 0 {
		msg += fmt.Sprintf(" tag=%d", e.Tag)
	}
	if e.Channel != "" {
		msg += " channel=" + e.Channel
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// UnknownProperty builds the diagnostic reported when no updater matches path.
func UnknownProperty(op string, tag int, path string) *BindingError {
	return &BindingError{
		Op:       op,
		Kind:     KindUnknownProperty,
		Property: path,
		Tag:      tag,
		Err:      ErrUnknownProperty,
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "bindings.Apply").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode a payload.
type ParseError struct {
	// Channel is the platform channel that received the payload.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the dispatcher and its bridges.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindingError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
