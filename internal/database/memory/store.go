// Package memory implements every repository contract in process memory. It
// backs the test suites, the offline simulator and STORE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/modifier"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Store holds all venture data behind one lock.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	ventures     map[string]domain.Venture
	effects      map[string][]domain.EffectDescriptor
	purses       map[string]domain.Purse
	markers      map[string]time.Time
	documents    map[string]domain.Document
	items        map[string][]domain.Document
	participants map[string]domain.Participant
	owners       map[string][]string
	events       []repository.EventLogEntry
	seq          int
	eventSeq     int64
}

var (
	_ repository.Ventures    = (*Store)(nil)
	_ repository.Effects     = (*Store)(nil)
	_ repository.Wallets     = (*Store)(nil)
	_ repository.TurnMarkers = (*Store)(nil)
	_ repository.Documents   = (*Store)(nil)
	_ repository.Roster      = (*Store)(nil)
	_ repository.EventLog    = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		ventures:     make(map[string]domain.Venture),
		effects:      make(map[string][]domain.EffectDescriptor),
		purses:       make(map[string]domain.Purse),
		markers:      make(map[string]time.Time),
		documents:    make(map[string]domain.Document),
		items:        make(map[string][]domain.Document),
		participants: make(map[string]domain.Participant),
		owners:       make(map[string][]string),
	}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) readVenture(facility domain.FacilityRef) domain.Venture {
	stored, ok := s.ventures[facility.ID]
	if !ok {
		return domain.DefaultVenture(facility)
	}
	v := stored.Sanitized()
	v.Facility = facility.WithStored(stored.Facility)
	return v
}

func (s *Store) writeVenture(v domain.Venture) error {
	if strings.TrimSpace(v.Facility.ID) == "" {
		return fmt.Errorf("%w: facility id is required", domain.ErrInvalidInput)
	}
	if stored, ok := s.ventures[v.Facility.ID]; ok {
		v.Facility = v.Facility.WithStored(stored.Facility)
	}
	s.ventures[v.Facility.ID] = v.Sanitized()
	return nil
}

// GetVenture returns the stored venture, or a default one for an unknown facility.
func (s *Store) GetVenture(_ context.Context, facility domain.FacilityRef) (*domain.Venture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := s.readVenture(facility)
	return &v, nil
}

// SaveVenture stores a sanitized copy of venture.
func (s *Store) SaveVenture(_ context.Context, venture domain.Venture) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeVenture(venture)
}

// ListFacilities returns the stored facilities of actorID ordered by ID.
func (s *Store) ListFacilities(_ context.Context, actorID string) ([]domain.FacilityRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.FacilityRef
	for _, v := range s.ventures {
		if v.Facility.ActorID == actorID {
			out = append(out, v.Facility)
		}
	}
	slices.SortFunc(out, func(a, b domain.FacilityRef) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

// GetPurse returns a copy of the actor's purse; unknown actors hold nothing.
func (s *Store) GetPurse(_ context.Context, actorID string) (domain.Purse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purses[actorID].Sanitized(), nil
}

// SavePurse replaces the actor's purse.
func (s *Store) SavePurse(_ context.Context, actorID string, purse domain.Purse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purses[actorID] = purse.Sanitized()
	return nil
}

// ClaimTurn records key once.
func (s *Store) ClaimTurn(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.markers[key]; seen {
		return false, nil
	}
	s.markers[key] = time.Now()
	return true, nil
}

// IsTurnProcessed reports whether key was claimed.
func (s *Store) IsTurnProcessed(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, seen := s.markers[key]
	return seen, nil
}

// PruneTurnMarkers drops markers claimed before the cutoff.
func (s *Store) PruneTurnMarkers(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key, claimed := range s.markers {
		if claimed.Before(before) {
			delete(s.markers, key)
			removed++
		}
	}
	return removed, nil
}

// List returns copies of owner's effects.
func (s *Store) List(_ context.Context, owner domain.OwnerRef) ([]domain.EffectDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.effects[owner.Key()]
	out := make([]domain.EffectDescriptor, len(list))
	for i, eff := range list {
		out[i] = cloneEffect(eff)
	}
	return out, nil
}

// Attach stores effect on owner. An empty ID is assigned.
func (s *Store) Attach(_ context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if effect.ID == "" {
		effect.ID = s.nextID("effect")
	}
	s.attachLocked(owner, effect)
	return effect.ID, nil
}

func (s *Store) attachLocked(owner domain.OwnerRef, effect domain.EffectDescriptor) {
	effect.Owner = owner
	if effect.Modifier != nil {
		effect.Changes = modifier.LegacyChanges(modifier.Parse(effect.Modifier, effect.Duration))
	}
	s.effects[owner.Key()] = append(s.effects[owner.Key()], cloneEffect(effect))
}

// Apply writes remaining-turn updates and deletions. Effects removed in the
// meantime are skipped.
func (s *Store) Apply(_ context.Context, owner domain.OwnerRef, changes []domain.EffectMutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := owner.Key()
	list := s.effects[key]
	for _, change := range changes {
		idx := slices.IndexFunc(list, func(e domain.EffectDescriptor) bool { return e.ID == change.EffectID })
		if idx < 0 {
			continue
		}
		if change.Delete {
			list = slices.Delete(list, idx, idx+1)
			continue
		}
		list[idx] = modifier.WithRemaining(list[idx], change.RemainingTurns)
	}
	s.effects[key] = list
	return nil
}

func cloneEffect(e domain.EffectDescriptor) domain.EffectDescriptor {
	e.Modifier = cloneMap(e.Modifier)
	e.Duration = cloneMap(e.Duration)
	e.Changes = slices.Clone(e.Changes)
	return e
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PutDocument registers a grantable reward.
func (s *Store) PutDocument(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.Ref] = doc
}

// GetDocument returns nil when ref is unknown.
func (s *Store) GetDocument(_ context.Context, ref string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[ref]
	if !ok {
		return nil, nil
	}
	doc.Data = cloneMap(doc.Data)
	doc.Modifier = cloneMap(doc.Modifier)
	doc.Duration = cloneMap(doc.Duration)
	return &doc, nil
}

// GrantItem copies doc into the actor's inventory.
func (s *Store) GrantItem(_ context.Context, actorID string, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Ref = s.nextID("item")
	s.grantLocked(actorID, doc)
	return doc.Ref, nil
}

func (s *Store) grantLocked(actorID string, doc domain.Document) {
	doc.Data = cloneMap(doc.Data)
	s.items[actorID] = append(s.items[actorID], doc)
}

// reserveID hands out an ID for a write that is applied later.
func (s *Store) reserveID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID(prefix)
}

// Items returns the items granted to actorID.
func (s *Store) Items(actorID string) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items[actorID])
}

// ListParticipants returns the roster ordered by ID.
func (s *Store) ListParticipants(_ context.Context) ([]domain.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Participant) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

// UpsertParticipant stores participant.
func (s *Store) UpsertParticipant(_ context.Context, participant domain.Participant) error {
	if participant.ID == "" {
		return fmt.Errorf("%w: participant id is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[participant.ID] = participant
	return nil
}

// ListOwners returns the participant IDs owning actorID.
func (s *Store) ListOwners(_ context.Context, actorID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.owners[actorID]), nil
}

// SetOwners replaces the owners of actorID.
func (s *Store) SetOwners(_ context.Context, actorID string, participantIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := slices.Clone(participantIDs)
	slices.Sort(ids)
	s.owners[actorID] = slices.Compact(ids)
	return nil
}
