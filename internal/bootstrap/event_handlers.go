package bootstrap

import (
	"log/slog"

	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/eventlog"
	"github.com/osse101/VentureBot_Go/internal/metrics"
	"github.com/osse101/VentureBot_Go/internal/sse"
)

// EventHandlerDependencies holds what the bus subscribers need
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Hub             *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector, the venture history
// recorder and the session stream to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.EventLogService.Subscribe(deps.EventBus)
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}
}
