package domain

import "time"

// Room is metadata only; membership lives in the directory.
type Room struct {
	ID        RoomID    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
