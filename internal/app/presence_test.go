package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odium-app/signaling/internal/domain"
)

func TestChat_EchoesToWholeRoomWithOneTimestamp(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator()
	s1 := connect(o, "c1", "u1")
	s2 := connect(o, "c2", "u2")

	o.Join("c1", "r1", domain.Profile{OdiumID: "u1"})
	o.Join("c2", "r1", domain.Profile{OdiumID: "u2"})

	// When c1 sends a chat message
	o.Chat("c1", "r1", "hi")

	// Then both members receive it, sender included
	m1 := s1.lastOfType(t, "new-message")
	m2 := s2.lastOfType(t, "new-message")
	req.Equal("hi", m1["message"])
	req.Equal("u1", m1["odiumId"])
	req.Equal("c1", m1["socketId"])
	req.Equal(m1["timestamp"], m2["timestamp"])
	req.NotEmpty(m1["timestamp"])
}

func TestToggleAudio_UpdatesFlagAndNotifiesOthers(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator()
	s1 := connect(o, "c1", "u1")
	s2 := connect(o, "c2", "u2")

	o.Join("c1", "r1", domain.Profile{OdiumID: "u1"})
	o.Join("c2", "r1", domain.Profile{OdiumID: "u2"})

	// When c1 unmutes
	o.ToggleAudio("c1", "r1", false)

	// Then the flag flips and only the peer is notified
	p, _ := o.Rooms.Get("r1", "c1")
	req.False(p.IsMuted)

	ev := s2.lastOfType(t, "user-toggled-audio")
	req.Equal(false, ev["isMuted"])
	req.Equal("u1", ev["odiumId"])
	req.Equal("c1", ev["socketId"])

	for _, e := range s1.events(t) {
		req.NotEqual("user-toggled-audio", e["type"], "sender must not hear its own toggle")
	}
}

func TestToggleVideo_NotifiesEvenWithoutParticipantRecord(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator()
	connect(o, "c1", "u1")
	s1 := connect(o, "c2", "u2")
	connect(o, "c3", "u3")

	o.Join("c1", "r1", domain.Profile{OdiumID: "u1"})
	o.Join("c2", "r1", domain.Profile{OdiumID: "u2"})

	// c3 never joined r1, yet the toggle is still best-effort broadcast
	o.ToggleVideo("c3", "r1", true)

	ev := s1.lastOfType(t, "user-toggled-video")
	req.Equal(true, ev["isEnabled"])
	req.Equal("c3", ev["socketId"])
}

func TestRaiseHand_BroadcastOnly(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator()
	s1 := connect(o, "c1", "u1")
	s2 := connect(o, "c2", "u2")

	o.Join("c1", "r1", domain.Profile{OdiumID: "u1"})
	o.Join("c2", "r1", domain.Profile{OdiumID: "u2"})

	o.RaiseHand("c1", "r1")

	ev := s2.lastOfType(t, "hand-raised")
	req.Equal("u1", ev["odiumId"])
	req.Equal("c1", ev["socketId"])

	// Nothing is stored: the participant record is untouched
	p, _ := o.Rooms.Get("r1", "c1")
	req.True(p.IsMuted)

	for _, e := range s1.events(t) {
		req.NotEqual("hand-raised", e["type"])
	}
}
