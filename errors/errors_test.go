package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseAccess,
				Kind:     KindTypeMismatch,
				WantType: "float64",
				HaveType: "int",
				Detail:   "requested type does not match",
			},
			contains: []string{"[access]", "type_mismatch", "want float64", "have int", "requested type does not match"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseInspect,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[inspect]", "out_of_bounds"},
		},
		{
			name: "want only",
			err: &Error{
				Phase:    PhaseAccess,
				Kind:     KindEmptyValue,
				WantType: "int",
			},
			contains: []string{"[access]", "empty_value", "want int"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCopy,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[copy]", "allocation", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseStore,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:    PhaseAccess,
		Kind:     KindTypeMismatch,
		WantType: "int",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseCopy, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindEmptyValue}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseAccess, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseAccess, KindTypeMismatch).
		WantType("string").
		HaveType("int").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseAccess {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseAccess)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if err.WantType != "string" {
		t.Errorf("WantType = %v, want 'string'", err.WantType)
	}
	if err.HaveType != "int" {
		t.Errorf("HaveType = %v, want 'int'", err.HaveType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Mismatch", func(t *testing.T) {
		err := Mismatch(PhaseAccess, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.WantType != "int" || err.HaveType != "string" {
			t.Errorf("WantType=%v HaveType=%v", err.WantType, err.HaveType)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		err := Empty(PhaseAccess, "int")
		if err.Kind != KindEmptyValue {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEmptyValue)
		}
		if err.WantType != "int" {
			t.Errorf("WantType = %v, want 'int'", err.WantType)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseCopy, 1024, 8)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !containsSubstring(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseInspect, 80, 64)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 80 {
			t.Errorf("Value = %v, want 80", err.Value)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseStore, "unparseable literal")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseMove, KindInvalidInput, cause, "context")
		if !errors.Is(err.Unwrap(), cause) {
			t.Error("Wrap did not preserve cause")
		}
		if !containsSubstring(err.Error(), "inner") {
			t.Errorf("Error() = %v, should contain cause", err.Error())
		}
	})
}

func containsSubstring(s, sub string) bool {
	return len(sub) == 0 || (len(s) >= len(sub) && indexOf(s, sub) >= 0)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
