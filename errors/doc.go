// Package errors provides structured error types for the anybox library.
//
// Errors are categorized by Phase (which container operation failed) and
// Kind (error category). The Error type carries the requested and held type
// names plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTypeMismatch).
//		WantType("float64").
//		HaveType("int").
//		Detail("requested type does not match stored type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Mismatch(errors.PhaseAccess, "float64", "int")
//	err := errors.Empty(errors.PhaseAccess, "int")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
