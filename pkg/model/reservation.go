package model

import (
	"time"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Reservation is a room booking for a fixed time window. Cancelled records are
// kept for history queries, never deleted.
type Reservation struct {
	ID                string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RoomID            string    `json:"room_id" bson:"room_id" validate:"required,mongodb"`
	UserID            string    `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	Title             string    `json:"title" bson:"title" validate:"required,min=1,max=200"`
	StartTime         time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime           time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	Date              time.Time `json:"date" bson:"date"`
	DurationMinutes   int       `json:"duration_minutes" bson:"duration_minutes"`
	AttendeeCount     int       `json:"attendee_count" bson:"attendee_count" validate:"required,min=1"`
	RequiredEquipment []string  `json:"required_equipment,omitempty" bson:"required_equipment,omitempty" validate:"omitempty,equipment_tags"`
	Status            string    `json:"status" bson:"status" validate:"required,oneof=active cancelled"`

	// Denormalized at creation time for notification rendering.
	UserName  string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty" bson:"user_email,omitempty"`
	RoomName  string `json:"room_name,omitempty" bson:"room_name,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Overlaps reports whether the reservation's [start, end) window intersects the
// given one. Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// DateOf truncates t to its local midnight, the calendar date stored on a
// reservation and matched by on-date queries.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
