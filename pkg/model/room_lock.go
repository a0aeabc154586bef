package model

import "time"

// RoomLock is an advisory lock serializing the check-overlap-then-insert
// sequence for one room. The unique _id makes concurrent acquisition fail with
// a duplicate key error; ExpiresAt backs a TTL index so a crashed holder cannot
// wedge the room.
type RoomLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
