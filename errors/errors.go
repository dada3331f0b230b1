package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which container operation the error occurred in
type Phase string

const (
	PhaseAccess  Phase = "access"  // typed extraction (Get/Ref)
	PhaseStore   Phase = "store"   // construction by value
	PhaseCopy    Phase = "copy"    // copy between containers
	PhaseMove    Phase = "move"    // move between containers
	PhaseInspect Phase = "inspect" // raw layout inspection
)

// Kind categorizes the error
type Kind string

const (
	KindEmptyValue   Kind = "empty_value"
	KindTypeMismatch Kind = "type_mismatch"
	KindAllocation   Kind = "allocation"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	WantType string
	HaveType string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.WantType != "" || e.HaveType != "" {
		b.WriteString(": ")
		if e.WantType != "" && e.HaveType != "" {
			b.WriteString("want ")
			b.WriteString(e.WantType)
			b.WriteString(", have ")
			b.WriteString(e.HaveType)
		} else if e.WantType != "" {
			b.WriteString("want ")
			b.WriteString(e.WantType)
		} else {
			b.WriteString("have ")
			b.WriteString(e.HaveType)
		}
	}

	if e.Detail != "" {
		if e.WantType != "" || e.HaveType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// WantType sets the requested type name
func (b *Builder) WantType(t string) *Builder {
	b.err.WantType = t
	return b
}

// HaveType sets the held type name
func (b *Builder) HaveType(t string) *Builder {
	b.err.HaveType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Mismatch creates a type mismatch error
func Mismatch(phase Phase, want, have string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		WantType: want,
		HaveType: have,
	}
}

// Empty creates an empty-container access error
func Empty(phase Phase, want string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindEmptyValue,
		WantType: want,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("offset %d out of bounds (length %d)", offset, length),
		Value:  offset,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
