package core

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/odium-app/signaling/internal/domain"
)

// peer pairs a participant record with its transport endpoint.
type peer struct {
	part   *domain.Participant
	signal SignalConnection
}

type roomState struct {
	meta  domain.Room
	peers map[domain.ConnID]*peer
}

// PublishResult reports delivery stats to the orchestrator.
// Dropped sends degrade to missed notifications, nothing is retried.
type PublishResult struct {
	SentTo  int
	Dropped int
}

type RoomInfo struct {
	ID           domain.RoomID `json:"id"`
	Participants int           `json:"participants"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Directory is the room membership store. A room exists exactly while it
// has at least one participant: creation is implicit on first Put, removal
// is synchronous with the last Remove, both under the same lock so a
// zero-participant room is never observable.
type Directory struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*roomState
}

func NewDirectory() *Directory {
	return &Directory{rooms: make(map[domain.RoomID]*roomState)}
}

// Put inserts or overwrites the participant for cid. Re-joining an
// already-joined room is an idempotent overwrite.
func (d *Directory) Put(rid domain.RoomID, cid domain.ConnID, p *domain.Participant, sig SignalConnection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	room, ok := d.rooms[rid]
	if !ok {
		room = &roomState{
			meta:  domain.Room{ID: rid, CreatedAt: time.Now()},
			peers: make(map[domain.ConnID]*peer),
		}
		d.rooms[rid] = room
		log.Info().Str("module", "core.directory").Str("room", string(rid)).Msg("room created")
	}
	room.peers[cid] = &peer{part: p, signal: sig}
}

// Remove deletes the participant and, when it was the last one, the room.
// Returns the removed participant (nil if it was not a member), whether
// the room was deleted, and whether the room existed at all.
func (d *Directory) Remove(rid domain.RoomID, cid domain.ConnID) (part *domain.Participant, roomDeleted, roomFound bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	room, ok := d.rooms[rid]
	if !ok {
		return nil, false, false
	}
	if pr, ok := room.peers[cid]; ok {
		part = pr.part
		delete(room.peers, cid)
	}
	if len(room.peers) == 0 {
		delete(d.rooms, rid)
		roomDeleted = true
		log.Info().Str("module", "core.directory").Str("room", string(rid)).Msg("room deleted (empty)")
	}
	return part, roomDeleted, true
}

func (d *Directory) Exists(rid domain.RoomID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.rooms[rid]
	return ok
}

func (d *Directory) Get(rid domain.RoomID, cid domain.ConnID) (domain.Participant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if room, ok := d.rooms[rid]; ok {
		if pr, ok := room.peers[cid]; ok {
			return *pr.part, true
		}
	}
	return domain.Participant{}, false
}

// SetMuted updates the audio flag; reports whether the record existed.
func (d *Directory) SetMuted(rid domain.RoomID, cid domain.ConnID, muted bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if room, ok := d.rooms[rid]; ok {
		if pr, ok := room.peers[cid]; ok {
			pr.part.IsMuted = muted
			return true
		}
	}
	return false
}

// SetVideo updates the video flag; reports whether the record existed.
func (d *Directory) SetVideo(rid domain.RoomID, cid domain.ConnID, enabled bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if room, ok := d.rooms[rid]; ok {
		if pr, ok := room.peers[cid]; ok {
			pr.part.HasVideo = enabled
			return true
		}
	}
	return false
}

// Snapshot returns copies of every participant except the excluded one.
func (d *Directory) Snapshot(rid domain.RoomID, exclude domain.ConnID) []domain.Participant {
	d.mu.RLock()
	defer d.mu.RUnlock()
	room, ok := d.rooms[rid]
	if !ok {
		return nil
	}
	all := lo.MapToSlice(room.peers, func(_ domain.ConnID, pr *peer) domain.Participant {
		return *pr.part
	})
	return lo.Filter(all, func(p domain.Participant, _ int) bool {
		return p.SocketID != exclude
	})
}

// Broadcast fans a frame out to every member of the room except one;
// pass an empty ConnID to reach the whole room. Fire-and-forget: a full
// send queue only bumps the dropped counter.
func (d *Directory) Broadcast(rid domain.RoomID, except domain.ConnID, f Frame) PublishResult {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := PublishResult{}
	room, ok := d.rooms[rid]
	if !ok {
		return res
	}
	for cid, pr := range room.peers {
		if cid == except {
			continue
		}
		if err := pr.signal.TrySend(f); err != nil {
			res.Dropped++
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "core.directory").Str("room", string(rid)).Int("sent_to", res.SentTo).Int("dropped", res.Dropped).Msg("broadcast result")
	return res
}

func (d *Directory) List() []RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return lo.MapToSlice(d.rooms, func(rid domain.RoomID, room *roomState) RoomInfo {
		return RoomInfo{ID: rid, Participants: len(room.peers), CreatedAt: room.meta.CreatedAt}
	})
}

func (d *Directory) RoomCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rooms)
}
