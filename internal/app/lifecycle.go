package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

// Join adds the connection to the room, creating it if needed. The joiner
// gets a snapshot of everyone already there; everyone else gets a
// user-joined. Mutation strictly precedes both sends, so the snapshot and
// the broadcast reflect the same membership.
func (o *Orchestrator) Join(cid domain.ConnID, rid domain.RoomID, p domain.Profile) {
	sig, ok := o.Registry.Signal(cid)
	if !ok {
		log.Warn().Str("module", "app.lifecycle").Str("cid", string(cid)).Msg("join from unknown connection")
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	part := domain.NewParticipant(cid, p, time.Now())
	o.Rooms.Put(rid, cid, part, sig)
	o.Registry.AddRoom(cid, rid)

	others := o.Rooms.Snapshot(rid, cid)
	o.unicast(sig, event.RoomParticipants{
		Type:         event.TypeRoomParticipants,
		RoomID:       string(rid),
		Participants: others,
	})
	o.broadcast(rid, cid, event.UserJoined{
		Type:      event.TypeUserJoined,
		OdiumID:   part.OdiumID,
		UserName:  part.UserName,
		AvatarURL: part.AvatarURL,
		SocketID:  cid,
		HasVideo:  part.HasVideo,
		HasAudio:  part.HasAudio,
	})

	log.Info().Str("module", "app.lifecycle").Str("cid", string(cid)).Str("room", string(rid)).Int("peers", len(others)+1).Msg("joined room")
}

// Leave removes the connection from the room. Leaving a room it never
// joined, or one that does not exist, is a silent no-op.
func (o *Orchestrator) Leave(rid domain.RoomID, cid domain.ConnID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.leaveLocked(rid, cid, o.Registry.OdiumID(cid))
}

// DisconnectCascade leaves every room recorded for the connection and
// discards its registry record. Called exactly once per disconnect.
func (o *Orchestrator) DisconnectCascade(cid domain.ConnID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rec, ok := o.Registry.Unregister(cid)
	if !ok {
		return
	}
	for rid := range rec.Rooms {
		o.leaveLocked(rid, cid, rec.OdiumID)
	}
	log.Info().Str("module", "app.lifecycle").Str("cid", string(cid)).Int("rooms", len(rec.Rooms)).Msg("disconnect cascade done")
}

// leaveLocked needs o.mu held. The user-left identity comes from the
// removed participant, falling back to the connection's registered id
// when the participant was already gone.
func (o *Orchestrator) leaveLocked(rid domain.RoomID, cid domain.ConnID, fallback domain.UserID) {
	part, roomDeleted, roomFound := o.Rooms.Remove(rid, cid)
	o.Registry.RemoveRoom(cid, rid)
	if !roomFound {
		return
	}

	uid := fallback
	if part != nil {
		uid = part.OdiumID
	}
	if !roomDeleted {
		o.broadcast(rid, cid, event.UserLeft{
			Type:     event.TypeUserLeft,
			OdiumID:  uid,
			SocketID: cid,
		})
	}
	log.Info().Str("module", "app.lifecycle").Str("cid", string(cid)).Str("room", string(rid)).Bool("room_deleted", roomDeleted).Msg("left room")
}
