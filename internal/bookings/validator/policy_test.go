package validator

import (
	"io"
	"testing"
	"time"

	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard})
}

func defaultPolicy() Policy {
	return Policy{
		MinDurationMin: 30,
		MaxDurationMin: 240,
		OpeningHour:    9,
		ClosingHour:    18,
	}
}

func TestValidateTimePolicy(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	v := NewReservationValidator(testLogger(), defaultPolicy())

	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantRule string
	}{
		{
			name:  "valid one hour slot",
			start: at(10, 10, 0),
			end:   at(10, 11, 0),
		},
		{
			name:  "ending exactly at closing hour",
			start: at(10, 17, 0),
			end:   at(10, 18, 0),
		},
		{
			name:  "minimum duration exactly",
			start: at(10, 10, 0),
			end:   at(10, 10, 30),
		},
		{
			name:  "maximum duration exactly",
			start: at(10, 12, 0),
			end:   at(10, 16, 0),
		},
		{
			name:     "start in the past",
			start:    at(10, 7, 0),
			end:      at(10, 8, 0),
			wantRule: RuleNoPastBookings,
		},
		{
			name:     "one minute under minimum",
			start:    at(10, 10, 0),
			end:      at(10, 10, 29),
			wantRule: RuleMinDuration,
		},
		{
			name:     "one minute over maximum",
			start:    at(10, 12, 0),
			end:      at(10, 16, 1),
			wantRule: RuleMaxDuration,
		},
		{
			name:     "starts before opening",
			start:    at(10, 8, 30),
			end:      at(10, 9, 30),
			wantRule: RuleBusinessHours,
		},
		{
			name:     "ends one minute past closing",
			start:    at(10, 17, 31),
			end:      at(10, 18, 1),
			wantRule: RuleBusinessHours,
		},
		{
			name:     "ends an hour past closing",
			start:    at(10, 17, 0),
			end:      at(10, 19, 0),
			wantRule: RuleBusinessHours,
		},
		{
			name:     "booking for tomorrow",
			start:    at(11, 10, 0),
			end:      at(11, 11, 0),
			wantRule: RuleSameDayOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateTimePolicy(tt.start, tt.end, now)

			if tt.wantRule == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected policy violation %q, got nil", tt.wantRule)
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodePolicyViolation {
				t.Fatalf("expected code %s, got %s", apperrors.CodePolicyViolation, appErr.Code)
			}
			if got := appErr.Details["rule"]; got != tt.wantRule {
				t.Fatalf("expected rule %q, got %v", tt.wantRule, got)
			}
		})
	}
}

func TestValidateTimePolicyConvertsToLocalTime(t *testing.T) {
	// Business hours are judged in now's location, not the caller's.
	loc := time.FixedZone("EET", 2*60*60)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	v := NewReservationValidator(testLogger(), defaultPolicy())

	// 08:00 UTC is 10:00 EET, inside business hours.
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := v.ValidateTimePolicy(start, end, now); err != nil {
		t.Fatalf("expected no error for UTC times inside local business hours, got %v", err)
	}
}

func TestValidateTimePolicyStartEqualToNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	v := NewReservationValidator(testLogger(), defaultPolicy())

	err := v.ValidateTimePolicy(now, now.Add(time.Hour), now)
	if err != nil {
		t.Fatalf("start equal to now must be accepted, got %v", err)
	}
}
