package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// EffectApplier writes a batch of effect mutations for one owner.
type EffectApplier interface {
	Apply(ctx context.Context, owner domain.OwnerRef, changes []domain.EffectMutation) error
}

// Report summarizes a commit.
type Report struct {
	Owners  int `json:"owners"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

type entry struct {
	ref   domain.EffectRef
	force bool
}

// Ledger collects effect duration changes across every venture of one
// actor-turn and writes them in one batch per owner.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{entries: map[string]*entry{}}
}

// Track registers a one-turn decrement. The first registration of an effect wins.
func (l *Ledger) Track(ref domain.EffectRef) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[ref.Key()]; ok {
		return
	}
	l.add(ref, false)
}

// ForceExpire schedules an effect for deletion, overriding any decrement.
func (l *Ledger) ForceExpire(ref domain.EffectRef) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[ref.Key()]; ok {
		e.force = true
		return
	}
	l.add(ref, true)
}

func (l *Ledger) add(ref domain.EffectRef, force bool) {
	l.entries[ref.Key()] = &entry{ref: ref, force: force}
	l.order = append(l.order, ref.Key())
}

// Len returns the number of tracked effects.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Plan returns the mutations Commit would write, grouped by owner in registration order.
func (l *Ledger) Plan() ([]domain.OwnerRef, map[string][]domain.EffectMutation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var owners []domain.OwnerRef
	batches := map[string][]domain.EffectMutation{}
	for _, key := range l.order {
		e := l.entries[key]
		ownerKey := e.ref.Owner.Key()
		if _, ok := batches[ownerKey]; !ok {
			owners = append(owners, e.ref.Owner)
		}
		batches[ownerKey] = append(batches[ownerKey], mutationFor(e))
	}
	return owners, batches
}

func mutationFor(e *entry) domain.EffectMutation {
	if e.force {
		return domain.EffectMutation{EffectID: e.ref.EffectID, Delete: true}
	}
	next := max(e.ref.RemainingTurns-1, 0)
	if next == 0 {
		return domain.EffectMutation{EffectID: e.ref.EffectID, Delete: true}
	}
	return domain.EffectMutation{EffectID: e.ref.EffectID, RemainingTurns: next}
}

// Commit applies every tracked change, one Apply call per owner, and empties
// the ledger. An owner that fails does not stop the others; the joined error
// is returned.
func (l *Ledger) Commit(ctx context.Context, applier EffectApplier) (Report, error) {
	log := logger.FromContext(ctx)
	owners, batches := l.Plan()

	var report Report
	var errs []error
	for _, owner := range owners {
		changes := batches[owner.Key()]
		if err := applier.Apply(ctx, owner, changes); err != nil {
			log.Error(LogMsgOwnerApplyFailed, "owner", owner.Key(), "error", err)
			errs = append(errs, fmt.Errorf(ErrMsgApplyFailedFmt, owner.Key(), err))
			continue
		}
		report.Owners++
		for _, c := range changes {
			if c.Delete {
				report.Deleted++
			} else {
				report.Updated++
			}
		}
	}

	l.mu.Lock()
	l.entries = map[string]*entry{}
	l.order = nil
	l.mu.Unlock()

	log.Info(LogMsgLedgerCommitted, "owners", report.Owners, "updated", report.Updated, "deleted", report.Deleted)
	return report, errors.Join(errs...)
}
