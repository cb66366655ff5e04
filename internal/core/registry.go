package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/domain"
)

type connEntry struct {
	record *domain.Connection
	signal SignalConnection
}

// Registry maps live connections to their identity, room set and
// transport endpoint. One record per transport connection; the logical
// user id is bound separately because not every connection carries one.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.ConnID]*connEntry
	// byUser keeps conn ids in registration order so resolution is
	// deterministic: most recently registered wins.
	byUser map[domain.UserID][]domain.ConnID
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[domain.ConnID]*connEntry),
		byUser:  make(map[domain.UserID][]domain.ConnID),
	}
}

// Attach creates the connection record on transport connect.
func (r *Registry) Attach(cid domain.ConnID, sig SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[cid] = &connEntry{record: domain.NewConnection(cid), signal: sig}
	log.Info().Str("module", "core.registry").Str("cid", string(cid)).Msg("connection attached")
}

// Register binds the caller-asserted identity to an attached connection.
// No-op when the user id is empty or the connection is unknown. Rebinding
// to a different id drops the old index entry first, so a connection is
// never resolvable under two identities.
func (r *Registry) Register(cid domain.ConnID, uid domain.UserID) {
	if uid == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[cid]
	if !ok {
		return
	}
	prev := e.record.OdiumID
	if prev == uid {
		return
	}
	if prev != "" {
		r.byUser[prev] = dropConn(r.byUser[prev], cid)
		if len(r.byUser[prev]) == 0 {
			delete(r.byUser, prev)
		}
	}
	e.record.OdiumID = uid
	r.byUser[uid] = append(r.byUser[uid], cid)
	log.Info().Str("module", "core.registry").Str("cid", string(cid)).Str("odium_id", string(uid)).Msg("identity registered")
}

// Unregister removes the record and returns it; the caller drives room
// cleanup from the returned room set before discarding it.
func (r *Registry) Unregister(cid domain.ConnID) (*domain.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[cid]
	if !ok {
		return nil, false
	}
	delete(r.entries, cid)
	if uid := e.record.OdiumID; uid != "" {
		r.byUser[uid] = dropConn(r.byUser[uid], cid)
		if len(r.byUser[uid]) == 0 {
			delete(r.byUser, uid)
		}
	}
	log.Info().Str("module", "core.registry").Str("cid", string(cid)).Msg("connection unregistered")
	return e.record, true
}

// ResolveByUserID returns the connection currently serving a logical
// identity. Several connections may share one id during a reconnect;
// the most recently registered one wins.
func (r *Registry) ResolveByUserID(uid domain.UserID) (domain.ConnID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cids := r.byUser[uid]
	if len(cids) == 0 {
		return "", false
	}
	return cids[len(cids)-1], true
}

func (r *Registry) Lookup(cid domain.ConnID) (domain.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[cid]
	if !ok {
		return domain.Connection{}, false
	}
	return *e.record, true
}

// OdiumID is a cheap identity read for outbound event tagging.
func (r *Registry) OdiumID(cid domain.ConnID) domain.UserID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[cid]; ok {
		return e.record.OdiumID
	}
	return ""
}

func (r *Registry) Signal(cid domain.ConnID) (SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[cid]
	if !ok || e.signal == nil {
		return nil, false
	}
	return e.signal, true
}

func (r *Registry) AddRoom(cid domain.ConnID, rid domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[cid]; ok {
		e.record.Rooms[rid] = struct{}{}
	}
}

func (r *Registry) RemoveRoom(cid domain.ConnID, rid domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[cid]; ok {
		delete(e.record.Rooms, rid)
	}
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func dropConn(cids []domain.ConnID, cid domain.ConnID) []domain.ConnID {
	out := cids[:0]
	for _, c := range cids {
		if c != cid {
			out = append(out, c)
		}
	}
	return out
}
