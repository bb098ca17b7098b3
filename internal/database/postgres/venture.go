package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

func toVenture(row generated.GetVentureRow) (domain.Venture, error) {
	v := domain.Venture{Facility: domain.FacilityRef{
		ID:         row.FacilityID,
		ExternalID: row.ExternalID,
		Name:       row.Name,
		ActorID:    row.ActorID,
	}}
	if err := unmarshalJSON(row.Config, &v.Config); err != nil {
		return v, err
	}
	if err := unmarshalJSON(row.State, &v.State); err != nil {
		return v, err
	}
	return v, nil
}

// readVenture loads facility, falling back to a default venture when it was never stored.
func readVenture(ctx context.Context, q *generated.Queries, facility domain.FacilityRef, forUpdate bool) (*domain.Venture, error) {
	var (
		row    generated.GetVentureRow
		err    error
		errMsg = ErrMsgFailedToGetVenture
	)
	if forUpdate {
		errMsg = ErrMsgFailedToLockVenture
		var locked generated.GetVentureForUpdateRow
		locked, err = q.GetVentureForUpdate(ctx, facility.ID)
		row = generated.GetVentureRow(locked)
	} else {
		row, err = q.GetVenture(ctx, facility.ID)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			v := domain.DefaultVenture(facility)
			return &v, nil
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	stored, err := toVenture(row)
	if err != nil {
		return nil, err
	}
	v := stored.Sanitized()
	v.Facility = facility.WithStored(stored.Facility)
	return &v, nil
}

// ventureParams encodes a sanitized venture for an upsert.
func ventureParams(venture domain.Venture) (generated.UpsertVentureParams, error) {
	v := venture.Sanitized()
	config, err := marshalJSON(v.Config)
	if err != nil {
		return generated.UpsertVentureParams{}, err
	}
	state, err := marshalJSON(v.State)
	if err != nil {
		return generated.UpsertVentureParams{}, err
	}
	return generated.UpsertVentureParams{
		FacilityID: v.Facility.ID,
		ExternalID: v.Facility.ExternalID,
		Name:       v.Facility.Name,
		ActorID:    v.Facility.ActorID,
		Config:     config,
		State:      state,
	}, nil
}

// writeVenture upserts a sanitized venture. Identity fields left empty keep their stored value.
func writeVenture(ctx context.Context, q *generated.Queries, venture domain.Venture) error {
	if strings.TrimSpace(venture.Facility.ID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgFacilityIDRequired)
	}
	params, err := ventureParams(venture)
	if err != nil {
		return err
	}
	if err := q.UpsertVenture(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveVenture, err)
	}
	return nil
}

func insertDefaultVenture(ctx context.Context, q *generated.Queries, facility domain.FacilityRef) error {
	params, err := ventureParams(domain.DefaultVenture(facility))
	if err != nil {
		return err
	}
	if err := q.InsertVentureIfMissing(ctx, generated.InsertVentureIfMissingParams(params)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockVenture, err)
	}
	return nil
}

// GetVenture returns the stored venture, or a default one for an unknown facility.
func (s *Store) GetVenture(ctx context.Context, facility domain.FacilityRef) (*domain.Venture, error) {
	return readVenture(ctx, s.q, facility, false)
}

// SaveVenture stores a sanitized copy of venture.
func (s *Store) SaveVenture(ctx context.Context, venture domain.Venture) error {
	return writeVenture(ctx, s.q, venture)
}

// ListFacilities returns the stored facilities of actorID ordered by ID.
func (s *Store) ListFacilities(ctx context.Context, actorID string) ([]domain.FacilityRef, error) {
	rows, err := s.q.ListFacilitiesByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFacilites, err)
	}

	facilities := make([]domain.FacilityRef, 0, len(rows))
	for _, row := range rows {
		facilities = append(facilities, domain.FacilityRef{
			ID:         row.FacilityID,
			ExternalID: row.ExternalID,
			Name:       row.Name,
			ActorID:    row.ActorID,
		})
	}
	return facilities, nil
}
