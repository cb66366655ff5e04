package domain

import (
	"time"
	"unicode/utf8"
)

const (
	MaxUserNameLen  = 64
	MaxAvatarURLLen = 512
)

// Profile carries the caller-supplied presence fields of a join.
type Profile struct {
	OdiumID   UserID
	UserName  string
	AvatarURL string
	HasVideo  bool
	HasAudio  bool
}

// Participant is a connection's membership record within one room.
// JSON tags match the wire fields the clients expect.
type Participant struct {
	OdiumID   UserID    `json:"odiumId"`
	UserName  string    `json:"userName"`
	AvatarURL string    `json:"avatarUrl"`
	SocketID  ConnID    `json:"socketId"`
	HasVideo  bool      `json:"hasVideo"`
	HasAudio  bool      `json:"hasAudio"`
	IsMuted   bool      `json:"isMuted"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// NewParticipant builds the membership record for a join.
// IsMuted always starts true, whatever the caller sent.
func NewParticipant(cid ConnID, p Profile, now time.Time) *Participant {
	return &Participant{
		OdiumID:   p.OdiumID,
		UserName:  clamp(p.UserName, MaxUserNameLen),
		AvatarURL: clamp(p.AvatarURL, MaxAvatarURLLen),
		SocketID:  cid,
		HasVideo:  p.HasVideo,
		HasAudio:  p.HasAudio,
		IsMuted:   true,
		JoinedAt:  now,
	}
}

// clamp cuts s to at most max bytes without splitting a rune.
func clamp(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
