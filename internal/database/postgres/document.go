package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/VentureBot_Go/internal/database/generated"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

// PutDocument registers or replaces a grantable reward.
func (s *Store) PutDocument(ctx context.Context, doc domain.Document) error {
	data, err := marshalJSON(doc.Data)
	if err != nil {
		return err
	}
	mod, err := marshalJSON(doc.Modifier)
	if err != nil {
		return err
	}
	duration, err := marshalJSON(doc.Duration)
	if err != nil {
		return err
	}

	err = s.q.UpsertDocument(ctx, generated.UpsertDocumentParams{
		Ref:      doc.Ref,
		Kind:     string(doc.Kind),
		Name:     doc.Name,
		Data:     data,
		Modifier: mod,
		Duration: duration,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPutDocument, err)
	}
	return nil
}

// GetDocument returns nil when ref is unknown.
func (s *Store) GetDocument(ctx context.Context, ref string) (*domain.Document, error) {
	row, err := s.q.GetDocument(ctx, ref)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDocument, err)
	}

	doc := domain.Document{Ref: row.Ref, Kind: domain.DocumentKind(row.Kind), Name: row.Name}
	for _, f := range []struct {
		raw []byte
		dst *map[string]any
	}{{row.Data, &doc.Data}, {row.Modifier, &doc.Modifier}, {row.Duration, &doc.Duration}} {
		if err := unmarshalJSON(f.raw, f.dst); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

func grantItem(ctx context.Context, q *generated.Queries, actorID string, doc domain.Document) (string, error) {
	data, err := marshalJSON(doc.Data)
	if err != nil {
		return "", err
	}

	itemID := uuid.NewString()
	err = q.InsertActorItem(ctx, generated.InsertActorItemParams{
		ItemID:    itemID,
		ActorID:   actorID,
		SourceRef: doc.Ref,
		Name:      doc.Name,
		Data:      data,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToGrantItem, err)
	}
	return itemID, nil
}

// GrantItem copies doc onto the actor and returns the new item's ID.
func (s *Store) GrantItem(ctx context.Context, actorID string, doc domain.Document) (string, error) {
	return grantItem(ctx, s.q, actorID, doc)
}

// Items returns the items granted to actorID, oldest first. Ref holds the item ID.
func (s *Store) Items(ctx context.Context, actorID string) ([]domain.Document, error) {
	rows, err := s.q.ListActorItems(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDocument, err)
	}

	items := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		doc := domain.Document{Ref: row.ItemID, Kind: domain.DocumentItem, Name: row.Name}
		if err := unmarshalJSON(row.Data, &doc.Data); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDocument, err)
		}
		items = append(items, doc)
	}
	return items, nil
}
