package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VentureBot_Go/internal/concurrency"
	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/database"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/eventlog"
	"github.com/osse101/VentureBot_Go/internal/modifier"
	"github.com/osse101/VentureBot_Go/internal/server"
	"github.com/osse101/VentureBot_Go/internal/turn"
	"github.com/osse101/VentureBot_Go/internal/venture"
	"github.com/osse101/VentureBot_Go/internal/worker"
)

// Application is the fully wired service
type Application struct {
	Config    *config.Config
	Store     Store
	Server    *server.Server
	Ventures  venture.Service
	Processor *turn.Processor
	Queue     *turn.Queue
	Janitor   *worker.Janitor
	Session   *SessionComponents
	Publisher *event.ResilientPublisher
	History   eventlog.Service

	dbPool *pgxpool.Pool
}

// NewApplication builds every component from cfg without starting any
// background work.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	store, pool, err := InitializeStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		closePool(pool)
		return nil, err
	}

	sess, err := InitializeSession(ctx, cfg, store)
	if err != nil {
		closePool(pool)
		return nil, err
	}

	history := eventlog.NewService(store)
	RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: history,
		Hub:             sess.Hub,
	})

	locks := concurrency.NewLockManager()
	ventures := venture.NewService(store, store, modifier.NewAggregator(store), sess.Roller, sess.Negotiator, publisher, locks)
	processor := turn.NewProcessor(turn.Config{
		ParticipantID: cfg.ParticipantID,
		CacheSize:     cfg.ProcessedCacheSize,
		CacheTTL:      cfg.ProcessedCacheTTL,
	}, sess.Presence, ventures, store, store, store, publisher, locks)
	queue := turn.NewQueue(processor, cfg.TurnQueueSize)

	janitor := worker.NewJanitor(cfg.MarkerPruneInterval,
		worker.PruneTask{Name: JanitorTaskTurnMarkers, Retention: cfg.MarkerRetention, Prune: store.PruneTurnMarkers},
		worker.PruneTask{Name: JanitorTaskVentureHistory, Retention: cfg.EventLogRetention, Prune: history.CleanupOldEvents},
	)

	deps := server.Dependencies{
		Ventures: ventures,
		Turns:    queue,
		History:  history,
		Roster:   store,
		Presence: sess.Presence,
		Hub:      sess.Hub,
	}
	// A nil *pgxpool.Pool must not reach the interface
	if pool != nil {
		deps.DBPool = database.Pool(pool)
	}

	return &Application{
		Config:    cfg,
		Store:     store,
		Server:    server.NewServer(cfg, deps),
		Ventures:  ventures,
		Processor: processor,
		Queue:     queue,
		Janitor:   janitor,
		Session:   sess,
		Publisher: publisher,
		History:   history,
		dbPool:    pool,
	}, nil
}

// Start launches the background workers. The HTTP server is started
// separately with Serve.
func (a *Application) Start() {
	a.Session.Hub.Start()
	a.Queue.Start()
	a.Janitor.Start()
}

// Serve blocks serving HTTP until the server is stopped
func (a *Application) Serve() error {
	if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops everything within timeout
func (a *Application) Shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	GracefulShutdown(ctx, ShutdownComponents{
		Server:             a.Server,
		Hub:                a.Session.Hub,
		Queue:              a.Queue,
		Janitor:            a.Janitor,
		ResilientPublisher: a.Publisher,
		DBPool:             a.dbPool,
	})
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
