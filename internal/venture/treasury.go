package venture

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// ClaimTreasury moves amount from the venture treasury into the actor's
// primary denomination and returns the treasury left over.
func (s *service) ClaimTreasury(ctx context.Context, facility domain.FacilityRef, actor domain.ActorRef, amount int) (int, error) {
	log := logger.FromContext(ctx)

	switch {
	case strings.TrimSpace(facility.ID) == "":
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	case strings.TrimSpace(actor.ID) == "":
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgActorIDRequired)
	case amount <= 0:
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgClaimAmountPositive)
	}

	unlockActor := s.locks.LockActor(actor.ID)
	defer unlockActor()
	unlockFacility := s.locks.LockFacility(facility.ID)
	defer unlockFacility()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBeginTx, "error", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	v, err := tx.GetVentureForUpdate(ctx, facility)
	if err != nil {
		log.Error(LogMsgFailedToGetVenture, "facility_id", facility.ID, "error", err)
		return 0, fmt.Errorf("failed to get venture: %w", err)
	}
	if v == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrVentureNotFound, facility.ID)
	}
	if v.Facility.ActorID != "" && v.Facility.ActorID != actor.ID {
		return 0, fmt.Errorf("%w: facility %s does not belong to %s", domain.ErrInvalidInput, facility.ID, actor.ID)
	}
	if amount > v.State.Treasury {
		return 0, fmt.Errorf("%w: have %d, want %d", domain.ErrInsufficientTreasury, v.State.Treasury, amount)
	}

	purse, err := tx.GetPurseForUpdate(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to get purse: %w", err)
	}
	purse = purse.Clone()
	purse[domain.PrimaryDenomination] += amount
	if err := tx.SavePurse(ctx, actor.ID, purse); err != nil {
		return 0, fmt.Errorf("failed to save purse: %w", err)
	}

	v.State.Treasury -= amount
	if err := tx.SaveVenture(ctx, *v); err != nil {
		log.Error(LogMsgFailedToSaveVenture, "facility_id", facility.ID, "error", err)
		return 0, fmt.Errorf("failed to save venture: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFailedToCommitTx, "error", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info(LogMsgTreasuryClaimed, "facility_id", facility.ID, "actor_id", actor.ID, "amount", amount, "treasury", v.State.Treasury)
	s.publish(ctx, event.NewTreasuryClaimedEvent(actor.ID, v.Facility, amount, v.State.Treasury))
	return v.State.Treasury, nil
}
