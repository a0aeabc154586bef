package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Room"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("empty ID"), CodeInvalidInput, http.StatusBadRequest},
		{"policy violation", PolicyViolation("min_duration", "too short"), CodePolicyViolation, http.StatusUnprocessableEntity},
		{"capacity exceeded", CapacityExceeded(10, 12), CodeCapacityExceeded, http.StatusUnprocessableEntity},
		{"slot conflict", SlotConflict("room busy"), CodeSlotConflict, http.StatusConflict},
		{"forbidden", Forbidden("not yours"), CodeForbidden, http.StatusForbidden},
		{"conflict", Conflict("already cancelled"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"unavailable", Unavailable("storage", errors.New("down")), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestPolicyViolationCarriesRule(t *testing.T) {
	err := PolicyViolation("business_hours", "outside opening hours")
	if err.Details["rule"] != "business_hours" {
		t.Fatalf("expected rule in details, got %v", err.Details)
	}
}

func TestWithDetails(t *testing.T) {
	err := SlotConflict("room is already booked").WithDetails(map[string]any{
		"conflicting_start": "2026-03-10T10:00:00Z",
	})

	if err.Code != CodeSlotConflict {
		t.Fatalf("expected code preserved, got %s", err.Code)
	}
	if err.Details["conflicting_start"] != "2026-03-10T10:00:00Z" {
		t.Fatalf("expected attached details, got %v", err.Details)
	}
}

func TestCapacityExceededDetails(t *testing.T) {
	err := CapacityExceeded(8, 11)
	if err.Details["capacity"] != 8 || err.Details["requested"] != 11 {
		t.Fatalf("expected capacity details, got %v", err.Details)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("storage", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to see the wrapped cause")
	}
}

func TestIsCode(t *testing.T) {
	err := SlotConflict("busy")

	if !IsCode(err, CodeSlotConflict) {
		t.Fatal("expected IsCode to match")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatal("expected IsCode to reject a different code")
	}
	if IsCode(errors.New("plain"), CodeSlotConflict) {
		t.Fatal("expected IsCode to reject non-AppError")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("User")
	if AsAppError(appErr) != appErr {
		t.Fatal("expected AsAppError to pass through an AppError")
	}

	wrapped := AsAppError(errors.New("plain failure"))
	if wrapped.Code != CodeInternal {
		t.Fatalf("expected plain errors wrapped as %s, got %s", CodeInternal, wrapped.Code)
	}
	if wrapped.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", wrapped.StatusCode())
	}
}
