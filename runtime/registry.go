package runtime

import (
	"daily-pick/domain"
	"sort"
	"sync"
)

// Registry maps a room to the inbox of the worker serving it.
type Registry struct {
	mu      sync.RWMutex
	inboxes map[domain.RoomID]chan domain.Command
}

func NewRegistry() *Registry {
	return &Registry{inboxes: make(map[domain.RoomID]chan domain.Command)}
}

func (r *Registry) Inbox(room domain.RoomID) (chan domain.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inbox, ok := r.inboxes[room]
	return inbox, ok
}

// Register stores the inbox of a room. It returns false and keeps the existing
// inbox if the room is already registered.
func (r *Registry) Register(room domain.RoomID, inbox chan domain.Command) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inboxes[room]; ok {
		return false
	}
	r.inboxes[room] = inbox
	return true
}

func (r *Registry) Rooms() []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rooms := make([]domain.RoomID, 0, len(r.inboxes))
	for room := range r.inboxes {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms
}
