package envkit

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestKeyError_Error(t *testing.T) {
	ke := &KeyError{
		Key:     "PORT",
		Code:    ErrCodeOutOfRange,
		Message: "value 0 is below minimum 1",
	}

	got := ke.Error()
	want := "envkit: PORT: out_of_range (value 0 is below minimum 1)"

	if got != want {
		t.Errorf("KeyError.Error()\ngot:  %q\nwant: %q", got, want)
	}
}

func TestKeyError_Is(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		match error
	}{
		{"missing", ErrCodeMissing, ErrMissingKey},
		{"invalid format", ErrCodeInvalidFormat, ErrInvalidFormat},
		{"out of range", ErrCodeOutOfRange, ErrOutOfRange},
	}

	sentinels := []error{ErrMissingKey, ErrInvalidFormat, ErrOutOfRange}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := error(&KeyError{Key: "K", Code: tt.code})
			for _, s := range sentinels {
				if got := errors.Is(err, s); got != (s == tt.match) {
					t.Errorf("errors.Is(%s, %v) = %v", tt.code, s, got)
				}
			}
		})
	}
}

func TestKeyError_Unwrap(t *testing.T) {
	_, cause := strconv.ParseInt("x", 10, 64)
	ke := invalidFormat(cause, "must be a base-10 integer, got %q", "x")
	ke.Key = "N"

	var numErr *strconv.NumError
	if !errors.As(ke, &numErr) {
		t.Fatal("errors.As should reach the strconv cause")
	}
	if !errors.Is(ke, ErrInvalidFormat) {
		t.Error("errors.Is should still match ErrInvalidFormat")
	}
}

func TestValidationError_Error_SingleError(t *testing.T) {
	ve := &ValidationError{
		Errors: []*KeyError{
			missingKey("DATABASE_HOST"),
		},
	}

	got := ve.Error()
	want := "config validation failed: 1 error\n  - DATABASE_HOST: missing (variable is required but not set)"

	if got != want {
		t.Errorf("ValidationError.Error() with single error\ngot:  %q\nwant: %q", got, want)
	}
}

func TestValidationError_Error_MultipleErrors(t *testing.T) {
	ve := &ValidationError{
		Errors: []*KeyError{
			{Key: "DATABASE_HOST", Code: ErrCodeMissing, Message: "variable is required but not set"},
			{Key: "DATABASE_PORT", Code: ErrCodeOutOfRange, Message: "value 0 is below minimum 1"},
			{Key: "MODE", Code: ErrCodeInvalidFormat, Message: `value "x" must be one of: dev, prod`},
		},
	}

	got := ve.Error()

	if !strings.HasPrefix(got, "config validation failed: 3 errors\n") {
		t.Errorf("ValidationError.Error() header incorrect\ngot: %q", got)
	}

	expectedErrors := []string{
		"  - DATABASE_HOST: missing (variable is required but not set)",
		"  - DATABASE_PORT: out_of_range (value 0 is below minimum 1)",
		`  - MODE: invalid_format (value "x" must be one of: dev, prod)`,
	}

	for _, expected := range expectedErrors {
		if !strings.Contains(got, expected) {
			t.Errorf("ValidationError.Error() missing expected error\ngot:  %q\nwant to contain: %q", got, expected)
		}
	}

	if strings.HasSuffix(got, "\n") {
		t.Error("ValidationError.Error() should not end with a newline")
	}
}

func TestValidationError_Error_NoErrors(t *testing.T) {
	ve := &ValidationError{}

	got := ve.Error()
	want := "config validation failed: no errors"

	if got != want {
		t.Errorf("ValidationError.Error() with no errors\ngot:  %q\nwant: %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	ve := &ValidationError{
		Errors: []*KeyError{
			missingKey("A"),
			outOfRange("length %d exceeds maximum %d", 3, 2),
		},
	}

	var err error = ve
	if !errors.Is(err, ErrMissingKey) {
		t.Error("expected errors.Is(ErrMissingKey)")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("expected errors.Is(ErrOutOfRange)")
	}
	if errors.Is(err, ErrInvalidFormat) {
		t.Error("did not expect errors.Is(ErrInvalidFormat)")
	}

	var ke *KeyError
	if !errors.As(err, &ke) || ke.Key != "A" {
		t.Errorf("errors.As should find the first KeyError, got %+v", ke)
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"missing code", ErrCodeMissing, "missing"},
		{"invalid_format code", ErrCodeInvalidFormat, "invalid_format"},
		{"out_of_range code", ErrCodeOutOfRange, "out_of_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.want {
				t.Errorf("error code = %q, want %q", tt.code, tt.want)
			}
		})
	}
}
