package errors

import (
	"fmt"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestDocumentError(t *testing.T) {
	cause := fmt.Errorf("read failed: %w", ErrInputNotFound)
	err := NewDocumentError("failed to load roster", cause).WithPath("test/task.yaml")

	want := "document error [path=test/task.yaml]: failed to load roster: read failed: input document not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !Is(err, ErrInputNotFound) {
		t.Error("should match the wrapped sentinel")
	}
	if !Is(err, &DocumentError{}) {
		t.Error("should match other DocumentErrors by type")
	}
	if Is(err, ErrNoTasks) {
		t.Error("should not match unrelated sentinels")
	}

	var docErr *DocumentError
	if !As(err, &docErr) || docErr.Path != "test/task.yaml" {
		t.Errorf("As() failed or lost path: %+v", docErr)
	}

	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if err.WithSeverity(SeverityWarning).Severity() != SeverityWarning {
		t.Error("WithSeverity() not applied")
	}
}

func TestSolveError(t *testing.T) {
	err := NewSolveError("no candidates with relevant skills", nil).WithTask("Write binary search")

	want := "solve error [task=Write binary search]: no candidates with relevant skills"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var solveErr *SolveError
	if !As(err, &solveErr) || solveErr.Task != "Write binary search" {
		t.Errorf("As() failed or lost task: %+v", solveErr)
	}
	if Unwrap(err) != nil {
		t.Error("Unwrap() should be nil without a cause")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "One")
	if err.Error() != "task 'One' not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	cause := New("glob matched nothing")
	withCause := NewNotFoundError("task", "One").WithCause(cause)
	if !Is(withCause, cause) {
		t.Error("should match the wrapped cause")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("salary is negative"),
			want: "validation error: salary is negative",
		},
		{
			name: "with field",
			err:  NewValidationError("salary is negative").WithField("Peoples[2].salary"),
			want: "validation error [field=Peoples[2].salary]: salary is negative",
		},
		{
			name: "with field and value",
			err:  NewValidationError("salary is negative").WithField("Peoples[2].salary").WithValue(-100),
			want: "validation error [field=Peoples[2].salary, value=-100]: salary is negative",
		},
		{
			name: "with cause",
			err:  NewValidationError("strict mode").WithCause(New("2 diagnostics")),
			want: "validation error: strict mode: 2 diagnostics",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassificationHelpers(t *testing.T) {
	if !IsUserFacing(NewDocumentError("bad input", nil)) {
		t.Error("DocumentError should be user-facing")
	}
	if IsUserFacing(New("internal")) {
		t.Error("plain errors should not be user-facing")
	}

	if got := GetSeverity(NewNotFoundError("task", "X")); got != SeverityWarning {
		t.Errorf("GetSeverity(NotFoundError) = %v", got)
	}
	if got := GetSeverity(New("unknown")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v", got)
	}

	// Classification sees through wrapping.
	wrapped := fmt.Errorf("outer: %w", NewValidationError("inner"))
	if !IsUserFacing(wrapped) {
		t.Error("wrapped ValidationError should still be user-facing")
	}
}
