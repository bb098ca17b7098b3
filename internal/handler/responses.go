package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/worker"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it onto a status code and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", op, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

var errorMappings = []struct {
	err    error
	status int
	msg    string
}{
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrVentureNotFound, http.StatusNotFound, ErrMsgVentureNotFoundError},
	{domain.ErrBoonNotFound, http.StatusNotFound, ErrMsgBoonNotFoundError},
	{domain.ErrVentureDisabled, http.StatusConflict, ErrMsgVentureDisabledError},
	{domain.ErrVentureFailed, http.StatusConflict, ErrMsgVentureFailedError},
	{domain.ErrTurnAlreadyResolved, http.StatusConflict, ErrMsgTurnAlreadyResolvedError},
	{domain.ErrStaleTurn, http.StatusConflict, ErrMsgStaleTurnError},
	{domain.ErrNotCoordinator, http.StatusConflict, ErrMsgNotCoordinatorError},
	{domain.ErrInsufficientTreasury, http.StatusUnprocessableEntity, ErrMsgInsufficientTreasuryErr},
	{domain.ErrBoonLimitReached, http.StatusUnprocessableEntity, ErrMsgBoonLimitReachedError},
	{domain.ErrGroupLimitReached, http.StatusUnprocessableEntity, ErrMsgGroupLimitReachedError},
	{domain.ErrPurchaseWindowClosed, http.StatusUnprocessableEntity, ErrMsgWindowClosedError},
	{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, ErrMsgInsufficientFundsError},
	{domain.ErrRewardGrant, http.StatusBadGateway, ErrMsgRewardGrantError},
	{domain.ErrRequestTimeout, http.StatusGatewayTimeout, ErrMsgRequestTimeoutError},
	{worker.ErrQueueFull, http.StatusServiceUnavailable, ErrMsgQueueFullError},
	{worker.ErrPoolStopped, http.StatusServiceUnavailable, ErrMsgQueueStoppedError},
}

// mapServiceErrorToUserMessage converts service errors to HTTP status codes
// and messages users can act on. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
