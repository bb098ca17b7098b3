package coverage

import (
	"fmt"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// spendOrder is the order denominations are drawn from when paying by value.
// The primary denomination goes first so change is made as rarely as possible.
var spendOrder = []string{domain.DenomGold, domain.DenomPlatinum, domain.DenomElectrum, domain.DenomSilver, domain.DenomCopper}

// Wallet is the in-memory purse of one actor for one actor-turn.
// Every spend either applies fully or leaves the purse untouched.
type Wallet struct {
	purse domain.Purse
	dirty bool
}

// Checkpoint captures a wallet so an uncommitted spend can be undone.
type Checkpoint struct {
	purse domain.Purse
	dirty bool
}

// NewWallet snapshots purse. Negative amounts read as zero.
func NewWallet(purse domain.Purse) *Wallet {
	p := make(domain.Purse, len(domain.DenominationsDescending))
	for _, denom := range domain.DenominationsDescending {
		if v := purse[denom]; v > 0 {
			p[denom] = v
		}
	}
	return &Wallet{purse: p}
}

// Primary returns the amount held in the primary denomination.
func (w *Wallet) Primary() int {
	return w.purse[domain.PrimaryDenomination]
}

// CanSpendPrimary reports whether amount can be paid from the primary denomination alone.
func (w *Wallet) CanSpendPrimary(amount int) bool {
	return amount >= 0 && w.Primary() >= amount
}

// SpendPrimary pays amount from the primary denomination only.
func (w *Wallet) SpendPrimary(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeAmount)
	}
	if !w.CanSpendPrimary(amount) {
		return fmt.Errorf("%w: need %d%s, have %d", domain.ErrInsufficientFunds, amount, domain.PrimaryDenomination, w.Primary())
	}
	if amount == 0 {
		return nil
	}
	w.purse[domain.PrimaryDenomination] -= amount
	w.dirty = true
	return nil
}

// TotalValue returns the purse's worth in copper.
func (w *Wallet) TotalValue() int {
	return w.purse.Value()
}

// CanSpendValue reports whether value copper can be paid across all denominations.
func (w *Wallet) CanSpendValue(value int) bool {
	return value >= 0 && w.TotalValue() >= value
}

// SpendValue pays value copper across denominations, breaking one coin and
// returning change in smaller denominations when nothing fits exactly.
func (w *Wallet) SpendValue(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeAmount)
	}
	if !w.CanSpendValue(value) {
		return fmt.Errorf("%w: need %dcp, have %dcp", domain.ErrInsufficientFunds, value, w.TotalValue())
	}
	if value == 0 {
		return nil
	}

	next := w.purse.Clone()
	remainder := value
	for _, denom := range spendOrder {
		worth := domain.DenominationValues[denom]
		n := min(next[denom], remainder/worth)
		next[denom] -= n
		remainder -= n * worth
	}

	if remainder > 0 {
		// Every coin left is worth more than the remainder: break the smallest.
		broken := ""
		for i := len(domain.DenominationsDescending) - 1; i >= 0; i-- {
			denom := domain.DenominationsDescending[i]
			if next[denom] > 0 && domain.DenominationValues[denom] > remainder {
				broken = denom
				break
			}
		}
		if broken == "" {
			return fmt.Errorf("%w: cannot make change for %dcp", domain.ErrInsufficientFunds, remainder)
		}
		next[broken]--
		change := domain.DenominationValues[broken] - remainder
		for _, denom := range domain.DenominationsDescending {
			worth := domain.DenominationValues[denom]
			if worth >= domain.DenominationValues[broken] {
				continue
			}
			next[denom] += change / worth
			change %= worth
		}
	}

	w.purse = next
	w.dirty = true
	return nil
}

// Credit adds amount of denom to the purse. Non-positive amounts are ignored.
func (w *Wallet) Credit(denom string, amount int) {
	if amount <= 0 {
		return
	}
	if _, ok := domain.DenominationValues[denom]; !ok {
		denom = domain.PrimaryDenomination
	}
	w.purse[denom] += amount
	w.dirty = true
}

// Dirty reports whether the wallet changed since it was loaded.
func (w *Wallet) Dirty() bool {
	return w.dirty
}

// Snapshot returns a copy of the current purse.
func (w *Wallet) Snapshot() domain.Purse {
	return w.purse.Clone()
}

// Checkpoint captures the current purse.
func (w *Wallet) Checkpoint() Checkpoint {
	return Checkpoint{purse: w.purse.Clone(), dirty: w.dirty}
}

// Restore rewinds the wallet to cp.
func (w *Wallet) Restore(cp Checkpoint) {
	w.purse = cp.purse.Clone()
	w.dirty = cp.dirty
}
