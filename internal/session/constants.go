package session

import "time"

// DefaultRequestTimeout bounds how long a delegated prompt waits for its participant.
const DefaultRequestTimeout = 180 * time.Second

// Message types
const (
	MsgRollRequest      MessageType = "roll.request"
	MsgRollResponse     MessageType = "roll.response"
	MsgCoverageRequest  MessageType = "coverage.request"
	MsgCoverageResponse MessageType = "coverage.response"
)

// Error Messages
const (
	ErrMsgParticipantUnavailable = "participant unavailable"
	ErrMsgRemoteFailure          = "remote participant failed the request"
	ErrMsgNoHandler              = "no handler for message type"
	ErrMsgInvalidReply           = "invalid reply"
)

// Log Messages
const (
	LogMsgRequestSent          = "Delegated request sent"
	LogMsgResponseReceived     = "Delegated response received"
	LogMsgLateResponseDropped  = "Dropped response for unknown or expired request"
	LogMsgRequestHandlerFailed = "Delegated request handler failed"
	LogMsgReplySendFailed      = "Failed to send delegated reply"
	LogMsgRollFallback         = "Delegated roll unavailable, rolling locally"
	LogMsgRollOutOfRange       = "Delegated roll outside formula bounds, rolling locally"
	LogMsgMisroutedEnvelope    = "Ignoring envelope addressed to another participant"
)
