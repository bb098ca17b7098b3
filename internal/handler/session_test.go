package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/VentureBot_Go/internal/session"
)

func TestHandleSessionResponse(t *testing.T) {
	t.Run("delivers responses", func(t *testing.T) {
		// ARRANGE
		deliverer := new(MockDeliverer)
		deliverer.On("Deliver", mock.Anything, mock.MatchedBy(func(env session.Envelope) bool {
			return env.ID == "req-1" && env.Type == session.MsgRollResponse && env.From == "p2"
		})).Return()
		w := httptest.NewRecorder()
		body := `{"id":"req-1","type":"roll.response","from":"p2","to":"p1","payload":{"value":4}}`

		// ACT
		HandleSessionResponse(deliverer)(w, newRequest(t, http.MethodPost, "/api/v1/session/responses", "", body))

		// ASSERT
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, MsgResponseAccepted, decodeBody[SuccessResponse](t, w).Message)
		deliverer.AssertExpectations(t)
	})

	t.Run("rejects requests", func(t *testing.T) {
		deliverer := new(MockDeliverer)
		w := httptest.NewRecorder()

		HandleSessionResponse(deliverer)(w, newRequest(t, http.MethodPost, "/", "", `{"id":"req-1","type":"roll.request"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgNotAResponse, decodeBody[ErrorResponse](t, w).Error)
		deliverer.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	})

	t.Run("requires an id", func(t *testing.T) {
		deliverer := new(MockDeliverer)
		w := httptest.NewRecorder()

		HandleSessionResponse(deliverer)(w, newRequest(t, http.MethodPost, "/", "", `{"type":"coverage.response"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This field is required", decodeBody[ValidationErrorResponse](t, w).Fields["id"])
	})
}
