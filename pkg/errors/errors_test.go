package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/linkrouter/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_action_error",
			code:    errors.ErrNoAction,
			message: "rule has no action",
			wantStr: "[NO_ACTION] rule has no action",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTypeMismatch, "argument %d: expected %q", 2, "u")
	if err.Message != `argument 2: expected "u"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}
		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is should see the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTypeMismatch, "mismatch").
		WithDetail(errors.DetailIndex, 0).
		WithDetail(errors.DetailExpectedTag, "u")

	if err.Details[errors.DetailIndex] != 0 {
		t.Errorf("WithDetail() index = %v, want 0", err.Details[errors.DetailIndex])
	}
	if err.Details[errors.DetailExpectedTag] != "u" {
		t.Errorf("WithDetail() tag = %v, want u", err.Details[errors.DetailExpectedTag])
	}

	err = err.WithDetails(map[string]interface{}{errors.DetailActualKind: "string"})
	if err.Details[errors.DetailActualKind] != "string" {
		t.Errorf("WithDetails() kind = %v", err.Details[errors.DetailActualKind])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrPattern, "error 1")
	err2 := errors.New(errors.ErrPattern, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(fmt.Errorf("outer: %w", err1), err2) {
			t.Error("errors.Is() should work through fmt wrapping")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNoAction, "x"), errors.ErrNoAction, true},
		{"different_code", errors.New(errors.ErrNoAction, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrRemoteCall, "call"), errors.ErrRemoteCall, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNoAction, false},
		{"nil_error", nil, errors.ErrNoAction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails(plain) = %v, want nil", got)
	}

	err := errors.New(errors.ErrSignatureSyntax, "bad").WithDetail(errors.DetailPosition, 3)
	if got := errors.GetErrorCode(err); got != errors.ErrSignatureSyntax {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorDetails(err)[errors.DetailPosition]; got != 3 {
		t.Errorf("GetErrorDetails() position = %v, want 3", got)
	}
}

func TestIsRunFatal(t *testing.T) {
	tests := []struct {
		code  errors.ErrorCode
		fatal bool
	}{
		{errors.ErrPattern, true},
		{errors.ErrRulesLoad, true},
		{errors.ErrConfigParse, true},
		{errors.ErrTypeMismatch, false},
		{errors.ErrNoAction, false},
		{errors.ErrRemoteTimeout, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.IsRunFatal(errors.New(tt.code, "x")); got != tt.fatal {
				t.Errorf("IsRunFatal(%s) = %v, want %v", tt.code, got, tt.fatal)
			}
		})
	}
}
