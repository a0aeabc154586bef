package model

import "time"

// Room is read-only input to the booking flow; capacity is checked at creation
// time only.
type Room struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Capacity  int       `json:"capacity" bson:"capacity" validate:"required,min=1,max=500"`
	Equipment []string  `json:"equipment,omitempty" bson:"equipment,omitempty" validate:"omitempty,equipment_tags"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}
