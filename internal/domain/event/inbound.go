// Package event defines the closed set of wire events the signaling core
// speaks. Inbound payloads are validated on parse; anything that fails
// validation is rejected by the adapter with an error reply instead of
// propagating partial state.
package event

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// Inbound event types.
const (
	TypeJoinRoom          = "join-room"
	TypeLeaveRoom         = "leave-room"
	TypeToggleAudio       = "toggle-audio"
	TypeToggleVideo       = "toggle-video"
	TypeRaiseHand         = "raise-hand"
	TypeChatMessage       = "chat-message"
	TypeOffer             = "offer"
	TypeAnswer            = "answer"
	TypeICECandidate      = "ice-candidate"
	TypeRequestConnection = "request-connection"
)

var ErrBadPayload = errors.New("bad payload")

var validate = validator.New()

// Envelope is the minimal frame read before dispatch.
type Envelope struct {
	Type string `json:"type"`
}

type JoinRoom struct {
	RoomID    string `json:"roomId" validate:"required"`
	OdiumID   string `json:"odiumId"`
	UserName  string `json:"userName"`
	AvatarURL string `json:"avatarUrl"`
	HasVideo  bool   `json:"hasVideo"`
	HasAudio  bool   `json:"hasAudio"`
}

type LeaveRoom struct {
	RoomID string `json:"roomId" validate:"required"`
}

type ToggleAudio struct {
	RoomID  string `json:"roomId" validate:"required"`
	IsMuted bool   `json:"isMuted"`
}

type ToggleVideo struct {
	RoomID    string `json:"roomId" validate:"required"`
	IsEnabled bool   `json:"isEnabled"`
}

type RaiseHand struct {
	RoomID string `json:"roomId" validate:"required"`
}

type ChatMessage struct {
	RoomID  string `json:"roomId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type Offer struct {
	TargetID string          `json:"targetId" validate:"required"`
	Offer    json.RawMessage `json:"offer"`
}

type Answer struct {
	TargetID string          `json:"targetId" validate:"required"`
	Answer   json.RawMessage `json:"answer"`
}

type ICECandidate struct {
	TargetID  string          `json:"targetId" validate:"required"`
	Candidate json.RawMessage `json:"candidate"`
}

type RequestConnection struct {
	TargetID string `json:"targetId" validate:"required"`
	RoomID   string `json:"roomId" validate:"required"`
}

// Parse unmarshals and validates one inbound payload.
func Parse[T any](data []byte) (T, error) {
	var p T
	if err := json.Unmarshal(data, &p); err != nil {
		return p, errors.Join(ErrBadPayload, err)
	}
	if err := validate.Struct(&p); err != nil {
		return p, errors.Join(ErrBadPayload, err)
	}
	return p, nil
}
