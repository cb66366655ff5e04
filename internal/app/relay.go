package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/core"
	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

// resolveTarget maps a caller-supplied target to a live connection:
// first as a logical user id, then verbatim as a connection id.
func (o *Orchestrator) resolveTarget(target string) (core.SignalConnection, bool) {
	if cid, ok := o.Registry.ResolveByUserID(domain.UserID(target)); ok {
		if sig, ok := o.Registry.Signal(cid); ok {
			return sig, true
		}
	}
	return o.Registry.Signal(domain.ConnID(target))
}

// RelayOffer forwards an opaque SDP offer to the resolved target. On
// resolution failure the message is dropped; the sender gets no feedback.
func (o *Orchestrator) RelayOffer(cid domain.ConnID, target string, offer json.RawMessage) {
	sig, ok := o.resolveTarget(target)
	if !ok {
		o.logDrop(cid, target, event.TypeOffer)
		return
	}
	o.unicast(sig, event.ForwardedOffer{
		Type:         event.TypeOffer,
		SenderID:     cid,
		SenderUserID: o.Registry.OdiumID(cid),
		Offer:        offer,
	})
}

func (o *Orchestrator) RelayAnswer(cid domain.ConnID, target string, answer json.RawMessage) {
	sig, ok := o.resolveTarget(target)
	if !ok {
		o.logDrop(cid, target, event.TypeAnswer)
		return
	}
	o.unicast(sig, event.ForwardedAnswer{
		Type:         event.TypeAnswer,
		SenderID:     cid,
		SenderUserID: o.Registry.OdiumID(cid),
		Answer:       answer,
	})
}

func (o *Orchestrator) RelayCandidate(cid domain.ConnID, target string, candidate json.RawMessage) {
	sig, ok := o.resolveTarget(target)
	if !ok {
		o.logDrop(cid, target, event.TypeICECandidate)
		return
	}
	o.unicast(sig, event.ForwardedCandidate{
		Type:         event.TypeICECandidate,
		SenderID:     cid,
		SenderUserID: o.Registry.OdiumID(cid),
		Candidate:    candidate,
	})
}

// RequestConnection asks the target to start negotiating for a room.
func (o *Orchestrator) RequestConnection(cid domain.ConnID, target, roomID string) {
	sig, ok := o.resolveTarget(target)
	if !ok {
		o.logDrop(cid, target, event.TypeConnectionRequest)
		return
	}
	o.unicast(sig, event.ConnectionRequest{
		Type:         event.TypeConnectionRequest,
		SenderID:     cid,
		SenderUserID: o.Registry.OdiumID(cid),
		RoomID:       roomID,
	})
}

func (o *Orchestrator) logDrop(cid domain.ConnID, target, kind string) {
	log.Warn().Str("module", "app.relay").Str("from", string(cid)).Str("target", target).Str("kind", kind).Msg("target unresolved, dropping")
}
