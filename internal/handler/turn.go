package handler

import (
	"context"
	"net/http"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// TurnSubmitter enqueues actor-turn triggers
type TurnSubmitter interface {
	Submit(ctx context.Context, trigger domain.TurnTrigger) error
}

// FacilityRequest names one facility of a turn trigger
type FacilityRequest struct {
	ID         string `json:"id" validate:"notblank,max=128"`
	ExternalID string `json:"external_id,omitempty" validate:"max=128"`
	Name       string `json:"name,omitempty" validate:"max=200"`
}

// TurnRequest is the body of POST /api/v1/turns
type TurnRequest struct {
	TurnID     string            `json:"turn_id" validate:"notblank,max=128"`
	ActorID    string            `json:"actor_id" validate:"notblank,max=128"`
	ActorName  string            `json:"actor_name,omitempty" validate:"max=200"`
	Facilities []FacilityRequest `json:"facilities" validate:"max=100,dive"`
}

// Trigger converts the request into a turn trigger
func (req TurnRequest) Trigger() domain.TurnTrigger {
	trigger := domain.TurnTrigger{
		TurnID: req.TurnID,
		Actor:  domain.ActorRef{ID: req.ActorID, Name: req.ActorName},
	}
	for _, f := range req.Facilities {
		trigger.Facilities = append(trigger.Facilities, domain.FacilityRef{
			ID:         f.ID,
			ExternalID: f.ExternalID,
			Name:       f.Name,
			ActorID:    req.ActorID,
		})
	}
	return trigger
}

// TurnAcceptedResponse acknowledges a queued trigger
type TurnAcceptedResponse struct {
	Message string `json:"message"`
	TurnID  string `json:"turn_id"`
	ActorID string `json:"actor_id"`
}

// HandleSubmitTurn queues a turn trigger. Resolution is asynchronous; results
// arrive as events on the stream and in the venture history.
// @Summary Submit turn
// @Description Queues a turn trigger for the actor across the listed facilities
// @Tags turns
// @Accept json
// @Produce json
// @Param request body TurnRequest true "Turn trigger"
// @Success 202 {object} TurnAcceptedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/turns [post]
// @Security ApiKeyAuth
func HandleSubmitTurn(queue TurnSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TurnRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit turn"); err != nil {
			return
		}

		if err := queue.Submit(r.Context(), req.Trigger()); err != nil {
			respondServiceError(w, r, "Submit turn", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgTurnQueued,
			"turn_id", req.TurnID,
			"actor_id", req.ActorID,
			"facilities", len(req.Facilities))

		respondJSON(w, http.StatusAccepted, TurnAcceptedResponse{
			Message: MsgTurnQueued,
			TurnID:  req.TurnID,
			ActorID: req.ActorID,
		})
	}
}
