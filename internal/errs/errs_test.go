package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	err := Validation("email already exists")

	if err.Error() != "email already exists" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "email already exists")
	}
	if !IsValidation(err) {
		t.Error("IsValidation() should be true")
	}
	if IsAuthentication(err) || IsNotFound(err) || IsDelivery(err) {
		t.Error("kind checks for other kinds should be false")
	}
}

func TestAuthentication(t *testing.T) {
	err := Authentication("invalid email or password")

	if !IsAuthentication(err) {
		t.Error("IsAuthentication() should be true")
	}
	if IsValidation(err) {
		t.Error("IsValidation() should be false")
	}
}

func TestNotFound_Message(t *testing.T) {
	err := NotFound("session", 42)

	if err.Error() != "session 42 not found" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "session 42 not found")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() should be true")
	}
}

func TestDelivery_WrapsCause(t *testing.T) {
	cause := errors.New("smtp: connection refused")
	err := Delivery("failed to send verification email", cause)

	if !IsDelivery(err) {
		t.Error("IsDelivery() should be true")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if err.Error() != "failed to send verification email" {
		t.Errorf("cause must not leak into the message, got %q", err.Error())
	}
}

func TestKindChecks_WrappedError(t *testing.T) {
	err := fmt.Errorf("refresh: %w", Authentication("refresh token has been revoked"))

	if !IsAuthentication(err) {
		t.Error("IsAuthentication() should see through fmt.Errorf wrapping")
	}
}

func TestKindChecks_PlainError(t *testing.T) {
	err := errors.New("some db failure")

	if IsValidation(err) || IsAuthentication(err) || IsNotFound(err) || IsDelivery(err) {
		t.Error("plain errors should not match any kind")
	}
}
