package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odium-app/signaling/internal/domain"
)

func member(cid domain.ConnID, uid domain.UserID) *domain.Participant {
	return domain.NewParticipant(cid, domain.Profile{OdiumID: uid}, time.Now())
}

func TestDirectory_PutCreatesRoom(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	req.False(d.Exists("r1"))
	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})

	req.True(d.Exists("r1"))
	req.Equal(1, d.RoomCount())

	p, ok := d.Get("r1", "c1")
	req.True(ok)
	req.Equal(domain.UserID("u1"), p.OdiumID)
}

func TestDirectory_Put_IsIdempotentOverwrite(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})
	d.Put("r1", "c1", member("c1", "u1b"), &fakeSink{})

	p, ok := d.Get("r1", "c1")
	req.True(ok)
	req.Equal(domain.UserID("u1b"), p.OdiumID)
	req.Len(d.Snapshot("r1", ""), 1)
}

func TestDirectory_Snapshot_ExcludesConnection(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})
	d.Put("r1", "c2", member("c2", "u2"), &fakeSink{})

	snap := d.Snapshot("r1", "c2")
	req.Len(snap, 1)
	req.Equal(domain.ConnID("c1"), snap[0].SocketID)

	// Snapshot of an unknown room is empty, not an error
	req.Empty(d.Snapshot("nope", ""))
}

func TestDirectory_Remove_LastParticipantDeletesRoom(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})
	d.Put("r1", "c2", member("c2", "u2"), &fakeSink{})

	part, roomDeleted, roomFound := d.Remove("r1", "c1")
	req.True(roomFound)
	req.False(roomDeleted)
	req.NotNil(part)
	req.Equal(domain.UserID("u1"), part.OdiumID)
	req.True(d.Exists("r1"))

	_, roomDeleted, roomFound = d.Remove("r1", "c2")
	req.True(roomFound)
	req.True(roomDeleted)

	// The room is gone the moment it hits zero participants
	req.False(d.Exists("r1"))
	req.Zero(d.RoomCount())
}

func TestDirectory_Remove_UnknownRoomOrParticipant(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	_, _, roomFound := d.Remove("nope", "c1")
	req.False(roomFound)

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})
	part, roomDeleted, roomFound := d.Remove("r1", "stranger")
	req.True(roomFound)
	req.False(roomDeleted)
	req.Nil(part)
}

func TestDirectory_SetFlags(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})

	req.True(d.SetMuted("r1", "c1", false))
	req.True(d.SetVideo("r1", "c1", true))

	p, _ := d.Get("r1", "c1")
	req.False(p.IsMuted)
	req.True(p.HasVideo)

	// Missing records report false but never error
	req.False(d.SetMuted("r1", "stranger", true))
	req.False(d.SetVideo("nope", "c1", true))
}

func TestDirectory_Broadcast_SkipsSender(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()
	s1, s2 := &fakeSink{}, &fakeSink{}

	d.Put("r1", "c1", member("c1", "u1"), s1)
	d.Put("r1", "c2", member("c2", "u2"), s2)

	res := d.Broadcast("r1", "c1", Frame(`{"type":"x"}`))
	req.Equal(1, res.SentTo)
	req.Zero(res.Dropped)
	req.Zero(s1.count())
	req.Equal(1, s2.count())

	// Empty exclusion reaches the whole room
	res = d.Broadcast("r1", "", Frame(`{"type":"y"}`))
	req.Equal(2, res.SentTo)
	req.Equal(1, s1.count())
	req.Equal(2, s2.count())
}

func TestDirectory_List(t *testing.T) {
	req := require.New(t)
	d := NewDirectory()

	d.Put("r1", "c1", member("c1", "u1"), &fakeSink{})
	d.Put("r1", "c2", member("c2", "u2"), &fakeSink{})
	d.Put("r2", "c3", member("c3", "u3"), &fakeSink{})

	infos := d.List()
	req.Len(infos, 2)
	counts := map[domain.RoomID]int{}
	for _, info := range infos {
		counts[info.ID] = info.Participants
	}
	req.Equal(2, counts["r1"])
	req.Equal(1, counts["r2"])
}
