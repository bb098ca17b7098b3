package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

// connectedPayload is the body of the first event on every stream
type connectedPayload struct {
	ClientID      string   `json:"client_id"`
	ParticipantID string   `json:"participant_id"`
	Filters       []string `json:"filters"`
}

// stream writes framed events to one response
type stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	log     *slog.Logger
}

func (s stream) send(e Event) bool {
	msg, err := FormatSSEMessage(e)
	if err != nil {
		s.log.Error(LogMsgWriteError, "event_type", e.Type, "error", err)
		return true
	}
	if _, err := s.w.Write(msg); err != nil {
		s.log.Warn(LogMsgWriteError, "event_type", e.Type, "error", err)
		return false
	}
	s.flusher.Flush()
	return true
}

// parseTypeFilter splits ?types=a,b and drops empty entries
func parseTypeFilter(raw string) []string {
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// Handler serves the event stream. Clients identify as a participant with
// ?participant=ID to receive delegated prompts, and may narrow broadcasts
// with ?types=.
// @Summary Session event stream
// @Tags session
// @Produce text/event-stream
// @Param participant query string false "Participant ID"
// @Param types query string false "Comma-separated event types"
// @Success 200 {string} string "event stream"
// @Router /api/v1/session/stream [get]
// @Security ApiKeyAuth
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		query := r.URL.Query()
		participantID := strings.TrimSpace(query.Get(QueryParamParticipant))
		eventTypes := parseTypeFilter(query.Get(QueryParamTypes))

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("Access-Control-Allow-Origin", "*")

		client := hub.Register(participantID, eventTypes)
		log := logger.FromContext(r.Context()).With("client_id", client.ID, "participant_id", participantID)
		log.Info(LogMsgClientConnected, "filters", eventTypes, "total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected)
		}()

		out := stream{w: w, flusher: flusher, log: log}
		if !out.send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   connectedPayload{ClientID: client.ID, ParticipantID: participantID, Filters: eventTypes},
		}) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case e, open := <-client.EventChannel:
				if !open || !out.send(e) {
					return
				}
			case <-keepalive.C:
				if !out.send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
