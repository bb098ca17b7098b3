package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

var (
	ErrParticipantUnavailable = errors.New(ErrMsgParticipantUnavailable)
	ErrRemoteFailure          = errors.New(ErrMsgRemoteFailure)
	ErrNoHandler              = errors.New(ErrMsgNoHandler)
	ErrInvalidReply           = errors.New(ErrMsgInvalidReply)
)

// MessageType names the kind of envelope on the wire.
type MessageType string

// IsResponse reports whether t answers a request.
func (t MessageType) IsResponse() bool {
	return t == MsgRollResponse || t == MsgCoverageResponse
}

// ResponseType returns the reply type for a request type.
func (t MessageType) ResponseType() MessageType {
	switch t {
	case MsgRollRequest:
		return MsgRollResponse
	case MsgCoverageRequest:
		return MsgCoverageResponse
	default:
		return t
	}
}

// Envelope is one message between participants. A response reuses the ID of
// the request it answers.
type Envelope struct {
	ID      string          `json:"id" validate:"required"`
	Type    MessageType     `json:"type" validate:"required"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}

// NewEnvelope builds a request envelope with a fresh ID.
func NewEnvelope(typ MessageType, from, to string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return Envelope{
		ID:      uuid.NewString(),
		Type:    typ,
		From:    from,
		To:      to,
		Payload: raw,
		SentAt:  time.Now(),
	}, nil
}

// Reply builds the response to e. A non-nil failure is carried in Error.
func (e Envelope) Reply(from string, payload any, failure error) (Envelope, error) {
	reply := Envelope{
		ID:     e.ID,
		Type:   e.Type.ResponseType(),
		From:   from,
		To:     e.From,
		SentAt: time.Now(),
	}
	if failure != nil {
		reply.Error = failure.Error()
		return reply, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	reply.Payload = raw
	return reply, nil
}

// Decode unmarshals the envelope payload into T.
func Decode[T any](e Envelope) (T, error) {
	var out T
	if len(e.Payload) == 0 {
		return out, fmt.Errorf("%w: empty payload", ErrInvalidReply)
	}
	if err := json.Unmarshal(e.Payload, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	return out, nil
}
