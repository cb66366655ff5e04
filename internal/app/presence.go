package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

// ToggleAudio updates the participant's muted flag and tells the room.
// The flag is display state only; the notification goes out whether or
// not the participant record was found.
func (o *Orchestrator) ToggleAudio(cid domain.ConnID, rid domain.RoomID, muted bool) {
	if !o.Rooms.SetMuted(rid, cid, muted) {
		log.Debug().Str("module", "app.presence").Str("cid", string(cid)).Str("room", string(rid)).Msg("toggle-audio without participant record")
	}
	o.broadcast(rid, cid, event.UserToggledAudio{
		Type:     event.TypeUserToggledAudio,
		SocketID: cid,
		OdiumID:  o.Registry.OdiumID(cid),
		IsMuted:  muted,
	})
}

func (o *Orchestrator) ToggleVideo(cid domain.ConnID, rid domain.RoomID, enabled bool) {
	if !o.Rooms.SetVideo(rid, cid, enabled) {
		log.Debug().Str("module", "app.presence").Str("cid", string(cid)).Str("room", string(rid)).Msg("toggle-video without participant record")
	}
	o.broadcast(rid, cid, event.UserToggledVideo{
		Type:      event.TypeUserToggledVideo,
		SocketID:  cid,
		OdiumID:   o.Registry.OdiumID(cid),
		IsEnabled: enabled,
	})
}

// RaiseHand is a stateless gesture; nothing is stored or queryable later.
func (o *Orchestrator) RaiseHand(cid domain.ConnID, rid domain.RoomID) {
	o.broadcast(rid, cid, event.HandRaised{
		Type:     event.TypeHandRaised,
		SocketID: cid,
		OdiumID:  o.Registry.OdiumID(cid),
	})
}

// Chat echoes the message to the entire room, sender included, stamped
// with one server-side timestamp. No history is kept.
func (o *Orchestrator) Chat(cid domain.ConnID, rid domain.RoomID, message string) {
	o.broadcast(rid, "", event.NewMessage{
		Type:      event.TypeNewMessage,
		SocketID:  cid,
		OdiumID:   o.Registry.OdiumID(cid),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
