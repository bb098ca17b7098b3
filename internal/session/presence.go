package session

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Presence overlays live connection state on the persisted roster. A
// participant is active when the roster says so or it is currently connected.
type Presence struct {
	roster repository.Roster
	mu     sync.RWMutex
	online map[string]int
}

// NewPresence wraps roster.
func NewPresence(roster repository.Roster) *Presence {
	return &Presence{roster: roster, online: make(map[string]int)}
}

// Connect marks participantID online. Connections are counted so a participant
// with two streams stays online until both close.
func (p *Presence) Connect(participantID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online[participantID]++
}

// Disconnect releases one connection of participantID.
func (p *Presence) Disconnect(participantID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.online[participantID] <= 1 {
		delete(p.online, participantID)
		return
	}
	p.online[participantID]--
}

// Online reports whether participantID has a live connection.
func (p *Presence) Online(participantID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online[participantID] > 0
}

// Participants returns the roster with the Active flag resolved. Connected
// participants without a roster row are listed as active non-GM players.
func (p *Presence) Participants(ctx context.Context) ([]domain.Participant, error) {
	list, err := p.roster.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.Participant, 0, len(list)+len(p.online))
	known := make(map[string]bool, len(list))
	for _, part := range list {
		part.Active = part.Active || p.online[part.ID] > 0
		known[part.ID] = true
		out = append(out, part)
	}
	for id := range p.online {
		if !known[id] {
			out = append(out, domain.Participant{ID: id, Active: true})
		}
	}
	slices.SortFunc(out, func(a, b domain.Participant) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Owners returns the participant IDs owning actorID.
func (p *Presence) Owners(ctx context.Context, actorID string) ([]string, error) {
	return p.roster.ListOwners(ctx, actorID)
}

// Coordinator returns the active GM with the lowest ID. Exactly one
// participant resolves turns; everyone else only answers prompts.
func (p *Presence) Coordinator(ctx context.Context) (domain.Participant, bool, error) {
	parts, err := p.Participants(ctx)
	if err != nil {
		return domain.Participant{}, false, err
	}
	gms := slices.DeleteFunc(parts, func(part domain.Participant) bool {
		return !part.GM || !part.Active
	})
	if len(gms) == 0 {
		return domain.Participant{}, false, nil
	}
	return slices.MinFunc(gms, func(a, b domain.Participant) int {
		return cmp.Compare(a.ID, b.ID)
	}), true, nil
}

// IsCoordinator reports whether participantID is the current coordinator.
func (p *Presence) IsCoordinator(ctx context.Context, participantID string) (bool, error) {
	coord, ok, err := p.Coordinator(ctx)
	if err != nil || !ok {
		return false, err
	}
	return coord.ID == participantID, nil
}
