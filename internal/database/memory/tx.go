package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// ventureTx stages writes and applies them on Commit. Transactions on one
// store are serialized so read-modify-write sequences cannot interleave.
type ventureTx struct {
	store    *Store
	ventures map[string]domain.Venture
	purses   map[string]domain.Purse
	items    []stagedItem
	effects  []domain.EffectDescriptor
	release  func()
	once     sync.Once
	closed   bool
}

type stagedItem struct {
	actorID string
	doc     domain.Document
}

// BeginTx starts a transaction.
func (s *Store) BeginTx(ctx context.Context) (repository.VentureTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	return &ventureTx{
		store:    s,
		ventures: make(map[string]domain.Venture),
		purses:   make(map[string]domain.Purse),
		release:  s.txMu.Unlock,
	}, nil
}

func (t *ventureTx) finish() {
	t.closed = true
	t.once.Do(t.release)
}

func (t *ventureTx) GetVentureForUpdate(ctx context.Context, facility domain.FacilityRef) (*domain.Venture, error) {
	if t.closed {
		return nil, domain.ErrTxClosed
	}
	if staged, ok := t.ventures[facility.ID]; ok {
		v := staged.Sanitized()
		return &v, nil
	}
	return t.store.GetVenture(ctx, facility)
}

// SaveVenture stages venture. A missing facility ID fails the commit.
func (t *ventureTx) SaveVenture(_ context.Context, venture domain.Venture) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.ventures[venture.Facility.ID] = venture.Sanitized()
	return nil
}

func (t *ventureTx) GetPurseForUpdate(ctx context.Context, actorID string) (domain.Purse, error) {
	if t.closed {
		return nil, domain.ErrTxClosed
	}
	if staged, ok := t.purses[actorID]; ok {
		return staged.Clone(), nil
	}
	return t.store.GetPurse(ctx, actorID)
}

func (t *ventureTx) SavePurse(_ context.Context, actorID string, purse domain.Purse) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.purses[actorID] = purse.Sanitized()
	return nil
}

// GrantItem stages an item grant. The returned ID is final.
func (t *ventureTx) GrantItem(_ context.Context, actorID string, doc domain.Document) (string, error) {
	if t.closed {
		return "", domain.ErrTxClosed
	}
	doc.Ref = t.store.reserveID("item")
	doc.Data = cloneMap(doc.Data)
	t.items = append(t.items, stagedItem{actorID: actorID, doc: doc})
	return doc.Ref, nil
}

// Attach stages an effect on owner. An empty ID is assigned.
func (t *ventureTx) Attach(_ context.Context, owner domain.OwnerRef, effect domain.EffectDescriptor) (string, error) {
	if t.closed {
		return "", domain.ErrTxClosed
	}
	if effect.ID == "" {
		effect.ID = t.store.reserveID("effect")
	}
	effect = cloneEffect(effect)
	effect.Owner = owner
	t.effects = append(t.effects, effect)
	return effect.ID, nil
}

// Commit applies every staged write or none of them.
func (t *ventureTx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	defer t.finish()
	if err := ctx.Err(); err != nil {
		return err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id := range t.ventures {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: facility id is required", domain.ErrInvalidInput)
		}
	}
	for _, v := range t.ventures {
		if err := t.store.writeVenture(v); err != nil {
			return err
		}
	}
	for actorID, purse := range t.purses {
		t.store.purses[actorID] = purse
	}
	for _, item := range t.items {
		t.store.grantLocked(item.actorID, item.doc)
	}
	for _, effect := range t.effects {
		t.store.attachLocked(effect.Owner, effect)
	}
	return nil
}

func (t *ventureTx) Rollback(context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.finish()
	return nil
}
