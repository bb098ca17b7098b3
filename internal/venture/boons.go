package venture

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/boon"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/modifier"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// PurchaseBoon buys a boon from the venture treasury against the turn
// snapshot named in req. The deduction, the counters and the reward commit
// together.
func (s *service) PurchaseBoon(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Facility.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}
	if strings.TrimSpace(req.Actor.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgActorIDRequired)
	}

	unlock := s.locks.LockFacility(req.Facility.ID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgFailedToBeginTx, "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	v, err := tx.GetVentureForUpdate(ctx, req.Facility)
	if err != nil {
		log.Error(LogMsgFailedToGetVenture, "facility_id", req.Facility.ID, "error", err)
		return nil, fmt.Errorf("failed to get venture: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrVentureNotFound, req.Facility.ID)
	}
	if req.TurnID != v.State.TurnID {
		return nil, fmt.Errorf("%w: requested %q, current %q", domain.ErrStaleTurn, req.TurnID, v.State.TurnID)
	}

	boons := boon.Parse(v.Config.BoonsText)
	b, err := boon.Find(boons, req.Index, req.Key)
	if err != nil {
		return nil, err
	}
	status := boon.Evaluate(boons, v.State)[b.Index]
	if !status.Purchasable {
		return nil, fmt.Errorf("%w: %s", domain.BlockReasonError(status.Reason), b.Name)
	}

	v.State.Treasury -= b.Cost
	boon.RecordPurchase(&v.State, b)
	if err := tx.SaveVenture(ctx, *v); err != nil {
		log.Error(LogMsgFailedToSaveVenture, "facility_id", req.Facility.ID, "error", err)
		return nil, fmt.Errorf("failed to save venture: %w", err)
	}

	result := &domain.PurchaseResult{Boon: b, TreasuryAfter: v.State.Treasury}
	if b.Reward != "" {
		ref, kind, err := s.grant(ctx, tx, req.Actor, v.Facility, b.Reward)
		if err != nil {
			log.Warn(LogMsgBoonGrantFailed, "facility_id", req.Facility.ID, "boon", b.Name, "reward", b.Reward, "error", err)
			return nil, err
		}
		result.GrantedRef = ref
		result.GrantedKind = string(kind)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFailedToCommitTx, "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info(LogMsgBoonPurchased, "facility_id", req.Facility.ID, "boon", b.Name, "cost", b.Cost, "treasury", result.TreasuryAfter)
	s.publish(ctx, event.NewBoonPurchasedEvent(req, *result))
	return result, nil
}

// grant hands the referenced document to the actor within tx. Items are
// copied onto the actor. Effects with a venture modifier attach to the
// facility, other effects to the actor.
func (s *service) grant(ctx context.Context, tx repository.VentureTx, actor domain.ActorRef, facility domain.FacilityRef, ref string) (string, domain.DocumentKind, error) {
	doc, err := s.documents.GetDocument(ctx, ref)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrRewardGrant, err)
	}
	if doc == nil {
		return "", "", fmt.Errorf("%w: %w: %s", domain.ErrRewardGrant, domain.ErrDocumentNotFound, ref)
	}

	switch doc.Kind {
	case domain.DocumentItem:
		id, err := tx.GrantItem(ctx, actor.ID, *doc)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrRewardGrant, err)
		}
		return id, domain.DocumentItem, nil

	case domain.DocumentEffect:
		duration, err := s.resolveDuration(ctx, doc.Duration, actor.ID)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrRewardGrant, err)
		}
		owner := domain.ActorOwner(actor.ID)
		if doc.Modifier != nil {
			owner = domain.FacilityOwner(facility.ID)
		}
		id, err := tx.Attach(ctx, owner, domain.EffectDescriptor{
			Name:     doc.Name,
			Modifier: doc.Modifier,
			Duration: duration,
		})
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrRewardGrant, err)
		}
		return id, domain.DocumentEffect, nil

	default:
		return "", "", fmt.Errorf("%w: %w: %s is %q", domain.ErrRewardGrant, domain.ErrUnsupportedDocument, ref, doc.Kind)
	}
}

// resolveDuration fixes an open-ended duration formula with a fresh roll.
// An explicit turn count always wins.
func (s *service) resolveDuration(ctx context.Context, duration map[string]any, actorID string) (map[string]any, error) {
	formula, _ := duration[domain.EffectDurationFormulaKey].(string)
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return duration, nil
	}
	if _, ok := duration[modifier.DurationKeyTurns]; ok {
		return duration, nil
	}

	out, err := s.roller.Roll(ctx, dice.RollRequest{
		Formula:     formula,
		Purpose:     RollPurposeDuration,
		ActorID:     actorID,
		Interactive: true,
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDurationRollFailed, "formula", formula, "error", err)
		return nil, err
	}

	resolved := make(map[string]any, len(duration)+1)
	for k, v := range duration {
		resolved[k] = v
	}
	resolved[modifier.DurationKeyTurns] = max(out.Total, 0)
	return resolved, nil
}
