package event

import (
	"encoding/json"

	"github.com/odium-app/signaling/internal/domain"
)

// Outbound event types. Relayed signaling reuses the inbound names
// (offer/answer/ice-candidate) on the way out.
const (
	TypeRoomParticipants  = "room-participants"
	TypeUserJoined        = "user-joined"
	TypeUserLeft          = "user-left"
	TypeUserToggledAudio  = "user-toggled-audio"
	TypeUserToggledVideo  = "user-toggled-video"
	TypeHandRaised        = "hand-raised"
	TypeNewMessage        = "new-message"
	TypeConnectionRequest = "connection-request"
	TypeError             = "error"
)

// RoomParticipants is unicast to a joiner; never includes the joiner itself.
type RoomParticipants struct {
	Type         string               `json:"type"`
	RoomID       string               `json:"roomId"`
	Participants []domain.Participant `json:"participants"`
}

type UserJoined struct {
	Type      string        `json:"type"`
	OdiumID   domain.UserID `json:"odiumId"`
	UserName  string        `json:"userName"`
	AvatarURL string        `json:"avatarUrl"`
	SocketID  domain.ConnID `json:"socketId"`
	HasVideo  bool          `json:"hasVideo"`
	HasAudio  bool          `json:"hasAudio"`
}

type UserLeft struct {
	Type     string        `json:"type"`
	OdiumID  domain.UserID `json:"odiumId"`
	SocketID domain.ConnID `json:"socketId"`
}

type UserToggledAudio struct {
	Type     string        `json:"type"`
	SocketID domain.ConnID `json:"socketId"`
	OdiumID  domain.UserID `json:"odiumId"`
	IsMuted  bool          `json:"isMuted"`
}

type UserToggledVideo struct {
	Type      string        `json:"type"`
	SocketID  domain.ConnID `json:"socketId"`
	OdiumID   domain.UserID `json:"odiumId"`
	IsEnabled bool          `json:"isEnabled"`
}

type HandRaised struct {
	Type     string        `json:"type"`
	SocketID domain.ConnID `json:"socketId"`
	OdiumID  domain.UserID `json:"odiumId"`
}

// NewMessage goes to the entire room, sender included.
type NewMessage struct {
	Type      string        `json:"type"`
	SocketID  domain.ConnID `json:"socketId"`
	OdiumID   domain.UserID `json:"odiumId"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
}

// ForwardedOffer carries an opaque offer to its resolved target.
type ForwardedOffer struct {
	Type         string          `json:"type"`
	SenderID     domain.ConnID   `json:"senderId"`
	SenderUserID domain.UserID   `json:"senderUserId"`
	Offer        json.RawMessage `json:"offer"`
}

type ForwardedAnswer struct {
	Type         string          `json:"type"`
	SenderID     domain.ConnID   `json:"senderId"`
	SenderUserID domain.UserID   `json:"senderUserId"`
	Answer       json.RawMessage `json:"answer"`
}

type ForwardedCandidate struct {
	Type         string          `json:"type"`
	SenderID     domain.ConnID   `json:"senderId"`
	SenderUserID domain.UserID   `json:"senderUserId"`
	Candidate    json.RawMessage `json:"candidate"`
}

type ConnectionRequest struct {
	Type         string        `json:"type"`
	SenderID     domain.ConnID `json:"senderId"`
	SenderUserID domain.UserID `json:"senderUserId"`
	RoomID       string        `json:"roomId"`
}

type Error struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
