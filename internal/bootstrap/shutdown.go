package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/server"
	"github.com/osse101/VentureBot_Go/internal/sse"
	"github.com/osse101/VentureBot_Go/internal/turn"
	"github.com/osse101/VentureBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Hub                *sse.Hub
	Queue              *turn.Queue
	Janitor            *worker.Janitor
	ResilientPublisher *event.ResilientPublisher
	DBPool             *pgxpool.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. SSE hub, closing streams so the server can drain
//  2. HTTP server, so no new triggers arrive
//  3. turn queue, finishing the actor-turn in flight
//  4. janitor
//  5. event publisher, flushing retries
//  6. database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Queue != nil {
		if err := c.Queue.Stop(ctx); err != nil {
			slog.Error(LogMsgTurnQueueShutdownFailed, "error", err)
		}
	}

	if c.Janitor != nil {
		if err := c.Janitor.Shutdown(ctx); err != nil {
			slog.Error(LogMsgJanitorShutdownFailed, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
