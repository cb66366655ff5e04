package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNewParticipant_AlwaysStartsMuted(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	p := NewParticipant("c1", Profile{OdiumID: "u1", HasAudio: true, HasVideo: true}, now)

	req.True(p.IsMuted)
	req.True(p.HasAudio)
	req.True(p.HasVideo)
	req.Equal(ConnID("c1"), p.SocketID)
	req.Equal(now, p.JoinedAt)
}

func TestNewParticipant_ClampsOversizedFields(t *testing.T) {
	req := require.New(t)

	p := NewParticipant("c1", Profile{
		UserName:  strings.Repeat("n", MaxUserNameLen+10),
		AvatarURL: strings.Repeat("a", MaxAvatarURLLen+10),
	}, time.Now())

	req.Len(p.UserName, MaxUserNameLen)
	req.Len(p.AvatarURL, MaxAvatarURLLen)
}

func TestNewParticipant_ClampKeepsRunesWhole(t *testing.T) {
	req := require.New(t)

	// 3-byte runes so the byte limit lands mid-rune
	p := NewParticipant("c1", Profile{
		UserName: strings.Repeat("界", MaxUserNameLen),
	}, time.Now())

	req.True(utf8.ValidString(p.UserName))
	req.LessOrEqual(len(p.UserName), MaxUserNameLen)
	req.Equal(MaxUserNameLen-MaxUserNameLen%3, len(p.UserName))
}
