package venture

import (
	"context"

	"github.com/osse101/VentureBot_Go/internal/concurrency"
	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/ledger"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// Service defines the venture operations
type Service interface {
	// ResolveTurn runs one venture for one actor-turn. The wallet is shared by
	// every facility of the actor and is committed by the caller.
	ResolveTurn(ctx context.Context, in TurnInput) (*domain.TurnResult, error)
	GetVenture(ctx context.Context, facility domain.FacilityRef) (*View, error)
	UpdateConfig(ctx context.Context, facility domain.FacilityRef, cfg domain.VentureConfig) (*View, error)
	PurchaseBoon(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error)
	ClaimTreasury(ctx context.Context, facility domain.FacilityRef, actor domain.ActorRef, amount int) (int, error)
	Reset(ctx context.Context, facility domain.FacilityRef) (*View, error)
}

// Aggregator folds the modifiers that apply to one venture
type Aggregator interface {
	Aggregate(ctx context.Context, actor domain.ActorRef, facility domain.FacilityRef) domain.AggregateModifier
}

// Negotiator funds a deficit from the treasury and the actor's wallet
type Negotiator interface {
	Cover(ctx context.Context, req coverage.Request, wallet *coverage.Wallet) coverage.Result
}

// TurnInput carries one facility of an actor-turn. Ledger may be nil when
// durations are not tracked.
type TurnInput struct {
	TurnID   string
	Actor    domain.ActorRef
	Facility domain.FacilityRef
	Wallet   *coverage.Wallet
	Ledger   *ledger.Ledger
}

// View is a venture together with its evaluated boons
type View struct {
	Venture domain.Venture        `json:"venture"`
	Policy  domain.CoveragePolicy `json:"policy"`
	Boons   []domain.BoonStatus   `json:"boons"`
}

type service struct {
	repo       repository.Ventures
	documents  repository.Documents
	aggregator Aggregator
	roller     dice.Roller
	negotiator Negotiator
	bus        event.Bus
	locks      *concurrency.LockManager
}

// NewService creates a new venture service. bus may be nil.
func NewService(
	repo repository.Ventures,
	documents repository.Documents,
	aggregator Aggregator,
	roller dice.Roller,
	negotiator Negotiator,
	bus event.Bus,
	locks *concurrency.LockManager,
) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:       repo,
		documents:  documents,
		aggregator: aggregator,
		roller:     roller,
		negotiator: negotiator,
		bus:        bus,
		locks:      locks,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
