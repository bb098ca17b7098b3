package handler

import (
	"context"
	"net/http"

	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/session"
)

// EnvelopeDeliverer hands inbound envelopes to the session layer
type EnvelopeDeliverer interface {
	Deliver(ctx context.Context, env session.Envelope)
}

// HandleSessionResponse accepts a participant's reply to a delegated roll or
// coverage request. Replies to unknown or expired requests are dropped by the
// courier, so the endpoint always answers 202 for a well-formed response.
// @Summary Answer a session request
// @Tags session
// @Accept json
// @Produce json
// @Param request body session.Envelope true "Response envelope"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/session/responses [post]
// @Security ApiKeyAuth
func HandleSessionResponse(deliverer EnvelopeDeliverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var env session.Envelope
		if err := DecodeAndValidateRequest(r, w, &env, "Session response"); err != nil {
			return
		}
		if !env.Type.IsResponse() {
			respondError(w, http.StatusBadRequest, ErrMsgNotAResponse)
			return
		}

		deliverer.Deliver(context.WithoutCancel(r.Context()), env)

		logger.FromContext(r.Context()).Debug(LogMsgResponseDelivered, "request_id", env.ID, "type", env.Type, "from", env.From)
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgResponseAccepted})
	}
}
