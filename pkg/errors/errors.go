// Package errors provides structured error reporting for the glow runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindReconcile indicates a failure during the tree build pass.
	KindReconcile
	// KindDispatch indicates a failure during event dispatch.
	KindDispatch
	// KindUpdate indicates a failure inside a widget's update routine.
	KindUpdate
	// KindPaint indicates a failure inside a widget's paint routine.
	KindPaint
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindReconcile:
		return "reconcile"
	case KindDispatch:
		return "dispatch"
	case KindUpdate:
		return "update"
	case KindPaint:
		return "paint"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GlowError represents a structured error in the glow runtime.
type GlowError struct {
	// Op is the operation that failed (e.g., "input.HandleEvent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the type name of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GlowError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GlowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.BeginWidget").
	Op string
	// Widget is the type name of the widget whose routine panicked, if any.
	Widget string
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

// ErrorHandler receives errors reported by the glow runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GlowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
