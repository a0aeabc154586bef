package validator

import (
	"fmt"
	"time"

	apperrors "roomly/pkg/errors"
)

// Policy rule names carried in POLICY_VIOLATION details.
const (
	RuleNoPastBookings = "no_past_bookings"
	RuleMinDuration    = "min_duration"
	RuleMaxDuration    = "max_duration"
	RuleBusinessHours  = "business_hours"
	RuleSameDayOnly    = "same_day_only"
)

// Policy holds the booking-time business rules. Values come from
// configuration; defaults are 30-240 minute windows inside 09:00-18:00,
// bookable for the current day only.
type Policy struct {
	MinDurationMin int
	MaxDurationMin int
	OpeningHour    int
	ClosingHour    int
}

// ValidateTimePolicy checks a proposed [start, end) window against the booking
// rules. The reference clock is an explicit parameter; the validator never
// reads global time, so results are deterministic for a given now.
//
// All wall-clock rules (business hours, same-day) are evaluated in now's
// location.
func (v *ReservationValidator) ValidateTimePolicy(start, end, now time.Time) error {
	start = start.In(now.Location())
	end = end.In(now.Location())

	if start.Before(now) {
		return apperrors.PolicyViolation(RuleNoPastBookings, "cannot book for past time slots")
	}

	durationMin := int(end.Sub(start).Minutes())
	if durationMin < v.policy.MinDurationMin {
		return apperrors.PolicyViolation(RuleMinDuration,
			fmt.Sprintf("booking must be at least %d minutes", v.policy.MinDurationMin))
	}
	if durationMin > v.policy.MaxDurationMin {
		return apperrors.PolicyViolation(RuleMaxDuration,
			fmt.Sprintf("booking cannot exceed %d minutes", v.policy.MaxDurationMin))
	}

	// The window must sit inside business hours. Ending exactly on the
	// closing hour is allowed; one minute past it is not.
	if start.Hour() < v.policy.OpeningHour ||
		end.Hour() > v.policy.ClosingHour ||
		(end.Hour() == v.policy.ClosingHour && end.Minute() > 0) {
		return apperrors.PolicyViolation(RuleBusinessHours,
			fmt.Sprintf("bookings are only allowed between %02d:00 and %02d:00", v.policy.OpeningHour, v.policy.ClosingHour))
	}

	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()
	if sy != ny || sm != nm || sd != nd {
		return apperrors.PolicyViolation(RuleSameDayOnly, "bookings are only allowed for the current day")
	}

	return nil
}
