package service

import "sync"

// TicketRegistry keys live tickets by their session id. Tickets exist only in
// memory and disappear when closed.
type TicketRegistry struct {
	mu      sync.Mutex
	tickets map[string]*TicketService
}

func NewTicketRegistry() *TicketRegistry {
	return &TicketRegistry{tickets: make(map[string]*TicketService)}
}

// Open starts a new empty ticket session.
func (r *TicketRegistry) Open() *TicketService {
	t := NewTicketService()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID()] = t
	return t
}

func (r *TicketRegistry) Get(id string) (*TicketService, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	return t, ok
}

func (r *TicketRegistry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, id)
}
