// Package app holds the room lifecycle controller, the presence mutators
// and the signaling relay on top of the core stores.
package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/core"
	"github.com/odium-app/signaling/internal/domain"
)

// Orchestrator routes inbound events to the registry and room directory
// and fans the resulting notifications back out. Lifecycle operations
// (Join/Leave/DisconnectCascade) are serialized by mu so a joiner's
// snapshot and the user-joined broadcast can never interleave with a
// concurrent membership change.
type Orchestrator struct {
	mu sync.Mutex

	Registry *core.Registry
	Rooms    *core.Directory
}

func (o *Orchestrator) unicast(sig core.SignalConnection, v any) {
	f, ok := marshal(v)
	if !ok {
		return
	}
	if err := sig.TrySend(f); err != nil {
		log.Debug().Err(err).Str("module", "app").Msg("unicast dropped")
	}
}

func (o *Orchestrator) broadcast(rid domain.RoomID, except domain.ConnID, v any) {
	f, ok := marshal(v)
	if !ok {
		return
	}
	o.Rooms.Broadcast(rid, except, f)
}

func marshal(v any) (core.Frame, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app").Msg("marshal outbound event")
		return nil, false
	}
	return core.Frame(b), true
}
