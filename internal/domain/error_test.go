package domain

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "order.create",
				Message: "invalid input",
			},
			expected: "order.create: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "order.create",
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "order.create: failed to save: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(nil); got != "" {
		t.Errorf("ErrorCode(nil) = %q, want empty", got)
	}
	if got := ErrorCode(errors.New("plain")); got != EINTERNAL {
		t.Errorf("ErrorCode(plain) = %q, want %q", got, EINTERNAL)
	}
	err := Errorf(ENOTFOUND, "order.get", "order not found")
	if got := ErrorCode(err); got != ENOTFOUND {
		t.Errorf("ErrorCode = %q, want %q", got, ENOTFOUND)
	}
	wrapped := WrapError(err, EINTERNAL, "handler", "lookup failed")
	if got := ErrorCode(wrapped); got != EINTERNAL {
		t.Errorf("ErrorCode(wrapped) = %q, want %q", got, EINTERNAL)
	}
}

func TestErrorMessage_HidesInternals(t *testing.T) {
	err := WrapError(errors.New("pq: connection refused"), EINTERNAL, "order.create", "failed to save order")
	if msg := ErrorMessage(err); msg != "An internal error occurred. Please try again later." {
		t.Errorf("internal error message leaked: %q", msg)
	}

	err = Errorf(EINVALID, "quote", "quantity must be positive")
	if msg := ErrorMessage(err); msg != "quantity must be positive" {
		t.Errorf("ErrorMessage = %q", msg)
	}
}

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPaid, OrderStatusInProduction, true},
		{OrderStatusInProduction, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPaid, false}, // only payment confirmation does this
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusShipped, OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		if got := CanTransitionOrder(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionOrder(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
