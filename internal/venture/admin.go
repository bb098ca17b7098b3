package venture

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/boon"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/event"
	"github.com/osse101/VentureBot_Go/internal/logger"
)

// NewView evaluates the boons of v. Reading never changes purchase counts.
func NewView(v domain.Venture) *View {
	return &View{
		Venture: v,
		Policy:  domain.PolicyFor(v.Config),
		Boons:   boon.Evaluate(boon.Parse(v.Config.BoonsText), v.State),
	}
}

func (s *service) GetVenture(ctx context.Context, facility domain.FacilityRef) (*View, error) {
	if strings.TrimSpace(facility.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}
	v, err := s.repo.GetVenture(ctx, facility)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToGetVenture, "facility_id", facility.ID, "error", err)
		return nil, fmt.Errorf("failed to get venture: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrVentureNotFound, facility.ID)
	}
	return NewView(*v), nil
}

// UpdateConfig replaces the user-authored config. State is kept, so a venture
// that is paused and re-enabled resumes where it stopped.
func (s *service) UpdateConfig(ctx context.Context, facility domain.FacilityRef, cfg domain.VentureConfig) (*View, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(facility.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}

	unlock := s.locks.LockFacility(facility.ID)
	defer unlock()

	v, err := s.repo.GetVenture(ctx, facility)
	if err != nil {
		log.Error(LogMsgFailedToGetVenture, "facility_id", facility.ID, "error", err)
		return nil, fmt.Errorf("failed to get venture: %w", err)
	}
	cfg.Normalize()
	v.Config = cfg
	v.State.Normalize(cfg)
	if err := s.repo.SaveVenture(ctx, *v); err != nil {
		log.Error(LogMsgFailedToSaveVenture, "facility_id", facility.ID, "error", err)
		return nil, fmt.Errorf("failed to save venture: %w", err)
	}

	log.Info(LogMsgConfigUpdated, "facility_id", facility.ID, "enabled", cfg.Enabled)
	return NewView(*v), nil
}

// Reset restores the initial state and re-enables the venture.
func (s *service) Reset(ctx context.Context, facility domain.FacilityRef) (*View, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(facility.ID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}

	unlock := s.locks.LockFacility(facility.ID)
	defer unlock()

	v, err := s.repo.GetVenture(ctx, facility)
	if err != nil {
		log.Error(LogMsgFailedToGetVenture, "facility_id", facility.ID, "error", err)
		return nil, fmt.Errorf("failed to get venture: %w", err)
	}
	v.Config.Enabled = true
	v.State = domain.NewVentureState(v.Config)
	if err := s.repo.SaveVenture(ctx, *v); err != nil {
		log.Error(LogMsgFailedToSaveVenture, "facility_id", facility.ID, "error", err)
		return nil, fmt.Errorf("failed to save venture: %w", err)
	}

	log.Info(LogMsgVentureReset, "facility_id", facility.ID)
	s.publish(ctx, event.NewVentureResetEvent(v.Facility))
	return NewView(*v), nil
}
