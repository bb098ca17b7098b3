package handler

import (
	"context"
	"net/http"

	"github.com/osse101/VentureBot_Go/internal/repository"
)

// HistoryReader returns recorded venture events
type HistoryReader interface {
	History(ctx context.Context, facilityID string, limit int) ([]repository.EventLogEntry, error)
}

// HistoryResponse lists the events of one facility, newest first
type HistoryResponse struct {
	FacilityID string                     `json:"facility_id"`
	Events     []repository.EventLogEntry `json:"events"`
}

// HandleGetHistory returns the recorded events of a facility
// @Summary Get venture history
// @Tags ventures
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/history [get]
// @Security ApiKeyAuth
func HandleGetHistory(history HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		facility := facilityFromPath(r)
		events, err := history.History(r.Context(), facility.ID, limit)
		if err != nil {
			respondServiceError(w, r, "Get venture history", err)
			return
		}
		if events == nil {
			events = []repository.EventLogEntry{}
		}
		respondJSON(w, http.StatusOK, HistoryResponse{FacilityID: facility.ID, Events: events})
	}
}
