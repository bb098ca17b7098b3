package handler

import (
	"net/http"

	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/venture"
)

// VentureHandler serves the per-facility venture routes
type VentureHandler struct {
	service venture.Service
}

// NewVentureHandler creates a new VentureHandler
func NewVentureHandler(service venture.Service) *VentureHandler {
	return &VentureHandler{service: service}
}

// UpdateConfigRequest is the body of PUT /ventures/{facilityID}/config.
// Out-of-range values are sanitized by the service rather than rejected.
type UpdateConfigRequest struct {
	Name       string               `json:"facility_name,omitempty" validate:"max=200"`
	ExternalID string               `json:"external_id,omitempty" validate:"max=128"`
	ActorID    string               `json:"actor_id,omitempty" validate:"max=128"`
	Config     domain.VentureConfig `json:"config"`
}

// PurchaseBoonRequest is the body of POST /ventures/{facilityID}/boons/purchase
type PurchaseBoonRequest struct {
	ActorID string `json:"actor_id" validate:"notblank"`
	TurnID  string `json:"turn_id" validate:"notblank"`
	Index   int    `json:"index" validate:"min=0"`
	Key     string `json:"key,omitempty"`
}

// ClaimTreasuryRequest is the body of POST /ventures/{facilityID}/treasury/claim
type ClaimTreasuryRequest struct {
	ActorID string `json:"actor_id" validate:"notblank"`
	Amount  int    `json:"amount" validate:"gt=0"`
}

// ClaimTreasuryResponse reports the treasury left after a claim
type ClaimTreasuryResponse struct {
	FacilityID    string `json:"facility_id"`
	Claimed       int    `json:"claimed"`
	TreasuryAfter int    `json:"treasury_after"`
}

// HandleGet returns config, state and evaluated boons
// @Summary Get venture
// @Description Returns the configuration, state and evaluated boon list of a facility's venture
// @Tags ventures
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Success 200 {object} venture.View
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/ [get]
// @Security ApiKeyAuth
func (h *VentureHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetVenture(r.Context(), facilityFromPath(r))
	if err != nil {
		respondServiceError(w, r, "Get venture", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleUpdateConfig replaces the venture configuration
// @Summary Update venture config
// @Tags ventures
// @Accept json
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Param request body UpdateConfigRequest true "New configuration"
// @Success 200 {object} venture.View
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/config [put]
// @Security ApiKeyAuth
func (h *VentureHandler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update venture config"); err != nil {
		return
	}

	facility := facilityFromPath(r)
	facility.Name = req.Name
	facility.ExternalID = req.ExternalID
	facility.ActorID = req.ActorID

	view, err := h.service.UpdateConfig(r.Context(), facility, req.Config)
	if err != nil {
		respondServiceError(w, r, "Update venture config", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandlePurchaseBoon buys a boon from the venture treasury
// @Summary Purchase boon
// @Description Buys the boon at index from the venture treasury. The boon must be available and affordable.
// @Tags ventures
// @Accept json
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Param request body PurchaseBoonRequest true "Purchase details"
// @Success 201 {object} domain.PurchaseResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/boons/purchase [post]
// @Security ApiKeyAuth
func (h *VentureHandler) HandlePurchaseBoon(w http.ResponseWriter, r *http.Request) {
	var req PurchaseBoonRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase boon"); err != nil {
		return
	}

	facility := facilityFromPath(r)
	facility.ActorID = req.ActorID
	result, err := h.service.PurchaseBoon(r.Context(), domain.PurchaseRequest{
		Facility: facility,
		Actor:    domain.ActorRef{ID: req.ActorID},
		TurnID:   req.TurnID,
		Index:    req.Index,
		Key:      req.Key,
	})
	if err != nil {
		respondServiceError(w, r, "Purchase boon", err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// HandleClaimTreasury moves treasury gold into the actor's wallet
// @Summary Claim treasury
// @Tags ventures
// @Accept json
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Param request body ClaimTreasuryRequest true "Claim details"
// @Success 200 {object} ClaimTreasuryResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/treasury/claim [post]
// @Security ApiKeyAuth
func (h *VentureHandler) HandleClaimTreasury(w http.ResponseWriter, r *http.Request) {
	var req ClaimTreasuryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim treasury"); err != nil {
		return
	}

	facility := facilityFromPath(r)
	after, err := h.service.ClaimTreasury(r.Context(), facility, domain.ActorRef{ID: req.ActorID}, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Claim treasury", err)
		return
	}
	respondJSON(w, http.StatusOK, ClaimTreasuryResponse{
		FacilityID:    facility.ID,
		Claimed:       req.Amount,
		TreasuryAfter: after,
	})
}

// HandleReset restores the initial state
// @Summary Reset venture
// @Tags ventures
// @Produce json
// @Param facilityID path string true "Facility ID"
// @Success 200 {object} venture.View
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ventures/{facilityID}/reset [post]
// @Security ApiKeyAuth
func (h *VentureHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Reset(r.Context(), facilityFromPath(r))
	if err != nil {
		respondServiceError(w, r, "Reset venture", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
