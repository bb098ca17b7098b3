package turn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/VentureBot_Go/internal/concurrency"
	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/ledger"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/metrics"
	"github.com/osse101/VentureBot_Go/internal/repository"
	"github.com/osse101/VentureBot_Go/internal/venture"
)

// Coordinator reports whether a participant is the one allowed to resolve turns.
type Coordinator interface {
	IsCoordinator(ctx context.Context, participantID string) (bool, error)
}

// Config tunes the processor.
type Config struct {
	ParticipantID string
	CacheSize     int
	CacheTTL      time.Duration
}

// Processor resolves one actor-turn: every listed facility in order against
// one wallet snapshot, then a single wallet write and one ledger commit.
type Processor struct {
	self      string
	gate      Coordinator
	ventures  venture.Service
	wallets   repository.Wallets
	markers   repository.TurnMarkers
	effects   ledger.EffectApplier
	bus       event.Bus
	locks     *concurrency.LockManager
	processed *expirable.LRU[string, struct{}]
	validate  *validator.Validate
}

// NewProcessor creates a processor
func NewProcessor(cfg Config, gate Coordinator, ventures venture.Service, wallets repository.Wallets, markers repository.TurnMarkers, effects ledger.EffectApplier, bus event.Bus, locks *concurrency.LockManager) *Processor {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Processor{
		self:      cfg.ParticipantID,
		gate:      gate,
		ventures:  ventures,
		wallets:   wallets,
		markers:   markers,
		effects:   effects,
		bus:       bus,
		locks:     locks,
		processed: expirable.NewLRU[string, struct{}](cfg.CacheSize, nil, cfg.CacheTTL),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Process handles one turn trigger. It returns ErrNotCoordinator when this
// participant must not resolve and ErrTurnAlreadyResolved for a trigger that
// was already processed, in this session or before a restart.
func (p *Processor) Process(ctx context.Context, trigger domain.TurnTrigger) (*domain.TurnSummary, error) {
	log := logger.FromContext(ctx)
	if err := p.validate.Struct(trigger); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidTriggerFormat, domain.ErrInvalidInput, err)
	}

	ok, err := p.gate.IsCoordinator(ctx, p.self)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug(LogMsgNotCoordinator, "participant", p.self, "turn_id", trigger.TurnID)
		return nil, fmt.Errorf("%w: %s", domain.ErrNotCoordinator, p.self)
	}

	key := trigger.Key()
	if p.processed.Contains(key) {
		return nil, p.duplicate(ctx, key)
	}

	unlock := p.locks.LockActor(trigger.Actor.ID)
	defer unlock()

	if p.processed.Contains(key) {
		return nil, p.duplicate(ctx, key)
	}
	claimed, err := p.markers.ClaimTurn(ctx, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarkerFormat, key, err)
	}
	p.processed.Add(key, struct{}{})
	if !claimed {
		return nil, p.duplicate(ctx, key)
	}

	return p.run(ctx, trigger)
}

func (p *Processor) duplicate(ctx context.Context, key string) error {
	logger.FromContext(ctx).Info(LogMsgDuplicateTrigger, "key", key)
	metrics.DuplicateTriggers.Inc()
	return fmt.Errorf("%w: %s", domain.ErrTurnAlreadyResolved, key)
}

func (p *Processor) run(ctx context.Context, trigger domain.TurnTrigger) (*domain.TurnSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.ActorTurnDuration.Observe(time.Since(start).Seconds()) }()

	log.Info(LogMsgActorTurnStarted, "actor_id", trigger.Actor.ID, "turn_id", trigger.TurnID, "facilities", len(trigger.Facilities))

	purse, err := p.wallets.GetPurse(ctx, trigger.Actor.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPurseFormat, trigger.Actor.ID, err)
	}
	wallet := coverage.NewWallet(purse)
	l := ledger.New()

	summary := &domain.TurnSummary{
		TurnID:  trigger.TurnID,
		Actor:   trigger.Actor,
		Results: []domain.TurnResult{},
	}
	for _, facility := range trigger.Facilities {
		if facility.ActorID == "" {
			facility.ActorID = trigger.Actor.ID
		}
		res, err := p.resolveFacility(ctx, venture.TurnInput{
			TurnID:   trigger.TurnID,
			Actor:    trigger.Actor,
			Facility: facility,
			Wallet:   wallet,
			Ledger:   l,
		})
		if err != nil {
			reason := skipReason(err)
			log.Warn(LogMsgFacilitySkipped, "facility_id", facility.ID, "reason", reason, "error", err)
			metrics.TurnsSkipped.WithLabelValues(reason).Inc()
			if summary.Skipped == nil {
				summary.Skipped = make(map[string]string)
			}
			summary.Skipped[facility.ID] = reason
			continue
		}
		summary.Results = append(summary.Results, *res)
		p.publish(ctx, event.NewTurnResolvedEvent(trigger.Actor.ID, *res))
		for _, evt := range event.NewTransitionEvents(trigger.Actor.ID, *res) {
			p.publish(ctx, evt)
		}
	}

	if wallet.Dirty() {
		if err := p.wallets.SavePurse(ctx, trigger.Actor.ID, wallet.Snapshot()); err != nil {
			log.Error(LogMsgWalletSaveFailed, "actor_id", trigger.Actor.ID, "error", err)
			return summary, fmt.Errorf(ErrMsgSavePurseFormat, trigger.Actor.ID, err)
		}
		summary.WalletChanged = true
	}

	if _, err := l.Commit(ctx, p.effects); err != nil {
		log.Error(LogMsgLedgerCommitFailed, "actor_id", trigger.Actor.ID, "error", err)
	}

	p.publish(ctx, event.NewActorTurnCompletedEvent(*summary))
	log.Info(LogMsgActorTurnCompleted, "actor_id", trigger.Actor.ID, "turn_id", trigger.TurnID,
		"resolved", len(summary.Results), "skipped", len(summary.Skipped), "wallet_changed", summary.WalletChanged)
	return summary, nil
}

// resolveFacility isolates one facility so a panic cannot end the actor-turn.
func (p *Processor) resolveFacility(ctx context.Context, in venture.TurnInput) (res *domain.TurnResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgFacilityPanicked, "facility_id", in.Facility.ID, "panic", r)
			res, err = nil, &panicError{value: r}
		}
	}()
	return p.ventures.ResolveTurn(ctx, in)
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf(ErrMsgPanicFormat, e.value)
}

func skipReason(err error) string {
	var pe *panicError
	switch {
	case errors.As(err, &pe):
		return SkipReasonPanic
	case errors.Is(err, domain.ErrVentureDisabled):
		return SkipReasonDisabled
	case errors.Is(err, domain.ErrVentureFailed):
		return SkipReasonFailed
	case errors.Is(err, domain.ErrTurnAlreadyResolved):
		return SkipReasonAlreadyResolved
	case errors.Is(err, domain.ErrVentureNotFound):
		return SkipReasonNotFound
	default:
		return SkipReasonError
	}
}

func (p *Processor) publish(ctx context.Context, evt event.Event) {
	if p.bus == nil {
		return
	}
	if err := p.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
