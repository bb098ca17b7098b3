package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/repository"
)

// ParticipantLister resolves the roster together with live presence
type ParticipantLister interface {
	Participants(ctx context.Context) ([]domain.Participant, error)
}

// RosterHandler manages session participants and actor ownership. Coverage
// prompts go to the active owners of an actor, so both must be set for a
// remote participant to decide.
type RosterHandler struct {
	roster   repository.Roster
	presence ParticipantLister
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(roster repository.Roster, presence ParticipantLister) *RosterHandler {
	return &RosterHandler{roster: roster, presence: presence}
}

// UpsertParticipantRequest is the body of PUT /session/participants/{participantID}
type UpsertParticipantRequest struct {
	Name string `json:"name" validate:"max=200"`
	GM   bool   `json:"gm"`
}

// ParticipantsResponse lists the session roster
type ParticipantsResponse struct {
	Participants []domain.Participant `json:"participants"`
}

// SetOwnersRequest is the body of PUT /actors/{actorID}/owners
type SetOwnersRequest struct {
	ParticipantIDs []string `json:"participant_ids" validate:"max=50,dive,notblank,max=128"`
}

// OwnersResponse lists the participants owning an actor
type OwnersResponse struct {
	ActorID        string   `json:"actor_id"`
	ParticipantIDs []string `json:"participant_ids"`
}

// HandleListParticipants returns the roster with live connections applied
// @Summary List session participants
// @Description Returns the roster. Participants connected to the session stream are active, including those without a roster entry.
// @Tags session
// @Produce json
// @Success 200 {object} ParticipantsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/session/participants [get]
// @Security ApiKeyAuth
func (h *RosterHandler) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.presence.Participants(r.Context())
	if err != nil {
		respondServiceError(w, r, "List participants", err)
		return
	}
	if participants == nil {
		participants = []domain.Participant{}
	}
	respondJSON(w, http.StatusOK, ParticipantsResponse{Participants: participants})
}

// HandleUpsertParticipant creates or renames a participant
// @Summary Register a session participant
// @Description Creates or updates a roster entry. GMs coordinate turns; players answer prompts for the actors they own.
// @Tags session
// @Accept json
// @Produce json
// @Param participantID path string true "Participant ID"
// @Param request body UpsertParticipantRequest true "Participant details"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/session/participants/{participantID} [put]
// @Security ApiKeyAuth
func (h *RosterHandler) HandleUpsertParticipant(w http.ResponseWriter, r *http.Request) {
	var req UpsertParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert participant"); err != nil {
		return
	}

	participant := domain.Participant{
		ID:   strings.TrimSpace(chi.URLParam(r, URLParamParticipantID)),
		Name: req.Name,
		GM:   req.GM,
	}
	if err := h.roster.UpsertParticipant(r.Context(), participant); err != nil {
		respondServiceError(w, r, "Upsert participant", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgParticipantUpserted, "participant_id", participant.ID, "gm", participant.GM)
	respondJSON(w, http.StatusOK, participant)
}

// HandleGetOwners returns the owners of an actor
// @Summary List actor owners
// @Tags session
// @Produce json
// @Param actorID path string true "Actor ID"
// @Success 200 {object} OwnersResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/actors/{actorID}/owners [get]
// @Security ApiKeyAuth
func (h *RosterHandler) HandleGetOwners(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, URLParamActorID)
	owners, err := h.roster.ListOwners(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, r, "List owners", err)
		return
	}
	if owners == nil {
		owners = []string{}
	}
	respondJSON(w, http.StatusOK, OwnersResponse{ActorID: actorID, ParticipantIDs: owners})
}

// HandleSetOwners replaces the owners of an actor
// @Summary Set actor owners
// @Description Replaces the participants owning an actor. An empty list leaves coverage decisions with the GM.
// @Tags session
// @Accept json
// @Produce json
// @Param actorID path string true "Actor ID"
// @Param request body SetOwnersRequest true "Owning participants"
// @Success 200 {object} OwnersResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/actors/{actorID}/owners [put]
// @Security ApiKeyAuth
func (h *RosterHandler) HandleSetOwners(w http.ResponseWriter, r *http.Request) {
	var req SetOwnersRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set owners"); err != nil {
		return
	}

	actorID := strings.TrimSpace(chi.URLParam(r, URLParamActorID))
	if actorID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
		return
	}
	if err := h.roster.SetOwners(r.Context(), actorID, req.ParticipantIDs); err != nil {
		respondServiceError(w, r, "Set owners", err)
		return
	}
	owners, err := h.roster.ListOwners(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, r, "List owners", err)
		return
	}
	if owners == nil {
		owners = []string{}
	}

	logger.FromContext(r.Context()).Info(LogMsgOwnersSet, "actor_id", actorID, "owners", owners)
	respondJSON(w, http.StatusOK, OwnersResponse{ActorID: actorID, ParticipantIDs: owners})
}
