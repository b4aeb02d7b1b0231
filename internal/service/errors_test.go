package service

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{}
	verr.add("email", "must be a valid email address")
	verr.add("password", "must not be empty")

	msg := verr.Error()
	if !strings.Contains(msg, "email") || !strings.Contains(msg, "password") {
		t.Errorf("expected both fields in message, got %q", msg)
	}
}

func TestValidationError_OrNil(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{}
	if verr.orNil() != nil {
		t.Error("expected nil for empty validation error")
	}

	verr.add("name", "must not be empty")
	if verr.orNil() == nil {
		t.Error("expected non-nil once a field failed")
	}
}
