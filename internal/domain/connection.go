// Package domain contains entity without logic, just meta-data
package domain

type (
	// ConnID is the transport-issued session id, unique per live connection.
	ConnID string
	// UserID is the caller-asserted logical identity ("odium id").
	// It is routing data only and is never verified here.
	UserID string
	RoomID string
)

// Connection is one live transport session and the set of rooms it occupies.
// Rooms must stay equal to the set of rooms where the connection appears as
// a participant; any divergence is a membership leak.
type Connection struct {
	ID      ConnID
	OdiumID UserID
	Rooms   map[RoomID]struct{}
}

func NewConnection(id ConnID) *Connection {
	return &Connection{
		ID:    id,
		Rooms: make(map[RoomID]struct{}),
	}
}
